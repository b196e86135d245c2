// Package drilldown resolves overview chart clicks into navigation commands.
//
// The element-to-target mapping is established when the chart is built, not
// guessed from labels at click time. Construction enforces that the mapping
// is bijective: every chart element resolves to exactly one live target and
// no two elements share a target, so no drilldown is dead or ambiguous.
package drilldown

import (
	"fmt"
	"strings"

	"github.com/sofealabs/impactboard/internal/impact"
	apperrors "github.com/sofealabs/impactboard/internal/services/web/platform/errors"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

// TargetKind distinguishes the two drilldown destinations.
type TargetKind string

const (
	TargetAwardee TargetKind = "awardee"
	TargetProgram TargetKind = "program"
)

// Target identifies the entity a chart element navigates to.
type Target struct {
	Kind TargetKind
	ID   string
}

// Element binds one chart element key to its drilldown target.
type Element struct {
	Key    string
	Target Target
}

// Payload is the click event input: the key of the activated chart element.
type Payload struct {
	ElementKey string
}

// Command is the navigation output of a successful resolution.
type Command struct {
	TargetPath string
}

// ErrUnresolved reports a click payload with no mapped target. Callers
// swallow it: the click becomes a no-op, never a crash or a default page.
var ErrUnresolved = apperrors.E(apperrors.KindUnresolvedDrilldown, "drilldown element has no mapped target")

// Resolver maps chart element keys to navigation targets. It is immutable
// after construction and safe for concurrent use.
type Resolver struct {
	targets map[string]Target
}

// NewResolver builds a resolver from chart elements, rejecting any mapping
// that would break the bijection invariant.
func NewResolver(elements []Element) (*Resolver, error) {
	targets := make(map[string]Target, len(elements))
	claimed := make(map[Target]string, len(elements))
	for _, element := range elements {
		key := strings.TrimSpace(element.Key)
		if key == "" {
			return nil, fmt.Errorf("drilldown element: key is required")
		}
		if element.Target.ID == "" {
			return nil, fmt.Errorf("drilldown element %q: target id is required", key)
		}
		switch element.Target.Kind {
		case TargetAwardee, TargetProgram:
		default:
			return nil, fmt.Errorf("drilldown element %q: unknown target kind %q", key, element.Target.Kind)
		}
		if _, dup := targets[key]; dup {
			return nil, fmt.Errorf("drilldown element %q: duplicate key", key)
		}
		if owner, dup := claimed[element.Target]; dup {
			return nil, fmt.Errorf("drilldown element %q: target already claimed by %q", key, owner)
		}
		targets[key] = element.Target
		claimed[element.Target] = key
	}
	return &Resolver{targets: targets}, nil
}

// Resolve converts a click payload into a navigation command.
func (r *Resolver) Resolve(payload Payload) (Command, error) {
	if r == nil {
		return Command{}, ErrUnresolved
	}
	target, ok := r.targets[strings.TrimSpace(payload.ElementKey)]
	if !ok {
		return Command{}, ErrUnresolved
	}
	switch target.Kind {
	case TargetProgram:
		return Command{TargetPath: routepath.Program(impact.ProgramID(target.ID))}, nil
	default:
		return Command{TargetPath: routepath.Awardee(target.ID)}, nil
	}
}

// Elements returns the number of mapped chart elements.
func (r *Resolver) Elements() int {
	if r == nil {
		return 0
	}
	return len(r.targets)
}
