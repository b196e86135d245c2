package drilldown

import (
	"errors"
	"testing"

	apperrors "github.com/sofealabs/impactboard/internal/services/web/platform/errors"
)

func awardeeElement(key, id string) Element {
	return Element{Key: key, Target: Target{Kind: TargetAwardee, ID: id}}
}

func TestResolveMapsElementToAwardeePath(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver([]Element{
		awardeeElement("score:AIS-Awardee-7", "AIS-Awardee-7"),
		awardeeElement("score:EIS-Awardee-1", "EIS-Awardee-1"),
	})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	command, err := resolver.Resolve(Payload{ElementKey: "score:AIS-Awardee-7"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if command.TargetPath != "/awardee/AIS-Awardee-7" {
		t.Fatalf("TargetPath = %q, want /awardee/AIS-Awardee-7", command.TargetPath)
	}
}

func TestResolveMapsElementToProgramPath(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver([]Element{
		{Key: "program:AIS", Target: Target{Kind: TargetProgram, ID: "AIS"}},
	})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	command, err := resolver.Resolve(Payload{ElementKey: "program:AIS"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if command.TargetPath != "/ais" {
		t.Fatalf("TargetPath = %q, want /ais", command.TargetPath)
	}
}

func TestResolveUnknownKeyIsUnresolved(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver([]Element{awardeeElement("score:AIS-Awardee-1", "AIS-Awardee-1")})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	_, err = resolver.Resolve(Payload{ElementKey: "score:nope"})
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("Resolve() error = %v, want ErrUnresolved", err)
	}
	if apperrors.KindOf(err) != apperrors.KindUnresolvedDrilldown {
		t.Fatalf("KindOf() = %q, want unresolved_drilldown", apperrors.KindOf(err))
	}
}

func TestNewResolverEnforcesBijection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elements []Element
	}{
		{"duplicate key", []Element{
			awardeeElement("score:A", "AIS-Awardee-1"),
			awardeeElement("score:A", "AIS-Awardee-2"),
		}},
		{"duplicate target", []Element{
			awardeeElement("score:A", "AIS-Awardee-1"),
			awardeeElement("score:B", "AIS-Awardee-1"),
		}},
		{"empty key", []Element{awardeeElement(" ", "AIS-Awardee-1")}},
		{"empty target", []Element{awardeeElement("score:A", "")}},
		{"unknown kind", []Element{{Key: "x", Target: Target{Kind: TargetKind("chart"), ID: "y"}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewResolver(tc.elements); err == nil {
				t.Fatal("NewResolver() error = nil, want error")
			}
		})
	}
}

func TestNilResolverResolvesToUnresolved(t *testing.T) {
	t.Parallel()

	var resolver *Resolver
	if _, err := resolver.Resolve(Payload{ElementKey: "score:A"}); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("Resolve() error = %v, want ErrUnresolved", err)
	}
}
