package impact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound reports an unknown program or awardee identifier.
var ErrNotFound = errors.New("impact: not found")

// AggregateMetrics summarizes one program for the overview page.
type AggregateMetrics struct {
	AwardeeCount int
	TotalScore   float64
	AverageScore float64
	// TopAwardeeID is the highest-scoring awardee in the program. Ties break
	// by identifier so the aggregate stays deterministic.
	TopAwardeeID string
}

// Store serves read-only lookups over the immutable fixture dataset.
//
// All accessors return copies or shared immutable values; none of them
// mutate state after NewStore returns.
type Store struct {
	programs     map[ProgramID]Program
	awardees     map[string]Awardee
	awardeeOrder []string
	byProgram    map[ProgramID][]string
	cohort       []float64
}

// NewStore validates the fixture records and builds the lookup indexes.
//
// Every awardee must reference a known program and identifiers must be
// unique; violations are construction errors, not runtime surprises.
func NewStore(programs []Program, awardees []Awardee, cohort []float64) (*Store, error) {
	s := &Store{
		programs:  make(map[ProgramID]Program, len(programs)),
		awardees:  make(map[string]Awardee, len(awardees)),
		byProgram: make(map[ProgramID][]string, len(programs)),
		cohort:    cohort,
	}

	for _, program := range programs {
		if _, ok := ParseProgramID(string(program.ID)); !ok {
			return nil, fmt.Errorf("program %q: unknown identifier", program.ID)
		}
		if _, dup := s.programs[program.ID]; dup {
			return nil, fmt.Errorf("program %q: duplicate identifier", program.ID)
		}
		s.programs[program.ID] = program
	}

	for _, awardee := range awardees {
		id := strings.TrimSpace(awardee.ID)
		if id == "" {
			return nil, fmt.Errorf("awardee %q: identifier is required", awardee.Name)
		}
		if _, dup := s.awardees[id]; dup {
			return nil, fmt.Errorf("awardee %q: duplicate identifier", id)
		}
		if _, ok := s.programs[awardee.Program]; !ok {
			return nil, fmt.Errorf("awardee %q: unknown program %q", id, awardee.Program)
		}
		s.awardees[id] = awardee
		s.awardeeOrder = append(s.awardeeOrder, id)
		s.byProgram[awardee.Program] = append(s.byProgram[awardee.Program], id)
	}

	sort.Strings(s.awardeeOrder)
	for _, ids := range s.byProgram {
		sort.Strings(ids)
	}
	return s, nil
}

// Program returns the program for the given identifier.
func (s *Store) Program(id ProgramID) (Program, error) {
	program, ok := s.programs[id]
	if !ok {
		return Program{}, fmt.Errorf("program %q: %w", id, ErrNotFound)
	}
	return program, nil
}

// Programs returns all programs in display order.
func (s *Store) Programs() []Program {
	out := make([]Program, 0, len(s.programs))
	for _, id := range ProgramIDs() {
		if program, ok := s.programs[id]; ok {
			out = append(out, program)
		}
	}
	return out
}

// Awardee returns the awardee for the given identifier.
func (s *Store) Awardee(id string) (Awardee, error) {
	awardee, ok := s.awardees[strings.TrimSpace(id)]
	if !ok {
		return Awardee{}, fmt.Errorf("awardee %q: %w", id, ErrNotFound)
	}
	return awardee, nil
}

// Awardees returns the awardees for one program, ordered by identifier.
func (s *Store) Awardees(program ProgramID) []Awardee {
	ids := s.byProgram[program]
	out := make([]Awardee, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.awardees[id])
	}
	return out
}

// AllAwardees returns every awardee, ordered by identifier.
func (s *Store) AllAwardees() []Awardee {
	out := make([]Awardee, 0, len(s.awardeeOrder))
	for _, id := range s.awardeeOrder {
		out = append(out, s.awardees[id])
	}
	return out
}

// CohortScores returns the score distribution backing the overview histogram.
func (s *Store) CohortScores() []float64 {
	return s.cohort
}

// OverviewAggregate derives per-program totals for the overview bar chart.
//
// The result is a pure function of the fixtures: repeated calls return equal
// values and no state changes between them.
func (s *Store) OverviewAggregate() map[ProgramID]AggregateMetrics {
	out := make(map[ProgramID]AggregateMetrics, len(s.programs))
	for id := range s.programs {
		agg := AggregateMetrics{}
		for _, awardeeID := range s.byProgram[id] {
			awardee := s.awardees[awardeeID]
			agg.AwardeeCount++
			agg.TotalScore += awardee.Metrics.Score
			if agg.TopAwardeeID == "" || beatsTop(awardee, s.awardees[agg.TopAwardeeID]) {
				agg.TopAwardeeID = awardeeID
			}
		}
		if agg.AwardeeCount > 0 {
			agg.AverageScore = agg.TotalScore / float64(agg.AwardeeCount)
		}
		out[id] = agg
	}
	return out
}

func beatsTop(candidate, current Awardee) bool {
	if candidate.Metrics.Score != current.Metrics.Score {
		return candidate.Metrics.Score > current.Metrics.Score
	}
	return candidate.ID < current.ID
}
