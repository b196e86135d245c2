package impact

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	programs := []Program{
		{ID: ProgramAIS, Name: "Academic Impact"},
		{ID: ProgramEIS, Name: "Economic Impact"},
	}
	awardees := []Awardee{
		{ID: "AIS-Awardee-2", Name: "Dr. B", Program: ProgramAIS, Metrics: Metrics{Score: 7.0}},
		{ID: "AIS-Awardee-1", Name: "Dr. A", Program: ProgramAIS, Metrics: Metrics{Score: 9.0}},
		{ID: "EIS-Awardee-1", Name: "Dr. C", Program: ProgramEIS, Metrics: Metrics{Score: 8.0}},
	}
	store, err := NewStore(programs, awardees, []float64{7.1, 8.2})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func TestProgramReturnsMatchingIdentifier(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	for _, id := range []ProgramID{ProgramAIS, ProgramEIS} {
		program, err := store.Program(id)
		if err != nil {
			t.Fatalf("Program(%q) error = %v", id, err)
		}
		if program.ID != id {
			t.Fatalf("Program(%q).ID = %q, want %q", id, program.ID, id)
		}
	}
}

func TestProgramUnknownIsNotFound(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	if _, err := store.Program(ProgramID("XIS")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Program(XIS) error = %v, want ErrNotFound", err)
	}
}

func TestAwardeesFilterAndOrder(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	awardees := store.Awardees(ProgramAIS)
	if len(awardees) != 2 {
		t.Fatalf("len(Awardees(AIS)) = %d, want 2", len(awardees))
	}
	for _, awardee := range awardees {
		if awardee.Program != ProgramAIS {
			t.Fatalf("awardee %q program = %q, want AIS", awardee.ID, awardee.Program)
		}
	}
	ids := []string{awardees[0].ID, awardees[1].ID}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("Awardees(AIS) order = %v, want sorted by id", ids)
	}
}

func TestAwardeeUnknownIsNotFound(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	if _, err := store.Awardee("does-not-exist"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Awardee(does-not-exist) error = %v, want ErrNotFound", err)
	}
}

func TestOverviewAggregateDeterministic(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	first := store.OverviewAggregate()
	second := store.OverviewAggregate()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("OverviewAggregate() not deterministic: %v vs %v", first, second)
	}

	ais := first[ProgramAIS]
	if ais.AwardeeCount != 2 {
		t.Fatalf("AIS AwardeeCount = %d, want 2", ais.AwardeeCount)
	}
	if ais.TopAwardeeID != "AIS-Awardee-1" {
		t.Fatalf("AIS TopAwardeeID = %q, want AIS-Awardee-1", ais.TopAwardeeID)
	}
	if ais.TotalScore != 16.0 {
		t.Fatalf("AIS TotalScore = %v, want 16.0", ais.TotalScore)
	}
}

func TestNewStoreRejectsBadFixtures(t *testing.T) {
	t.Parallel()

	programs := []Program{{ID: ProgramAIS}}
	tests := []struct {
		name     string
		awardees []Awardee
	}{
		{"unknown program", []Awardee{{ID: "HIS-Awardee-1", Program: ProgramHIS}}},
		{"duplicate id", []Awardee{{ID: "AIS-Awardee-1", Program: ProgramAIS}, {ID: "AIS-Awardee-1", Program: ProgramAIS}}},
		{"empty id", []Awardee{{ID: " ", Program: ProgramAIS}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewStore(programs, tc.awardees, nil); err == nil {
				t.Fatal("NewStore() error = nil, want error")
			}
		})
	}
}
