package impact

import (
	"reflect"
	"testing"
)

func TestFixturesReferentialIntegrity(t *testing.T) {
	t.Parallel()

	store := Fixtures()
	for _, awardee := range store.AllAwardees() {
		if _, err := store.Program(awardee.Program); err != nil {
			t.Fatalf("awardee %q references unknown program %q", awardee.ID, awardee.Program)
		}
	}
}

func TestFixturesIncludeDrilldownTarget(t *testing.T) {
	t.Parallel()

	// Overview drilldown demos click through to this awardee.
	awardee, err := Fixtures().Awardee("AIS-Awardee-7")
	if err != nil {
		t.Fatalf("Awardee(AIS-Awardee-7) error = %v", err)
	}
	if awardee.Name == "" {
		t.Fatal("expected awardee name to be populated")
	}
}

func TestFixturesStableAcrossCalls(t *testing.T) {
	t.Parallel()

	first := Fixtures()
	second := Fixtures()
	if !reflect.DeepEqual(first.AllAwardees(), second.AllAwardees()) {
		t.Fatal("fixture awardees differ between builds")
	}
	if !reflect.DeepEqual(first.CohortScores(), second.CohortScores()) {
		t.Fatal("fixture cohort differs between builds")
	}
}

func TestFixturesCohortBounds(t *testing.T) {
	t.Parallel()

	cohort := Fixtures().CohortScores()
	if len(cohort) != cohortSize {
		t.Fatalf("len(cohort) = %d, want %d", len(cohort), cohortSize)
	}
	for _, score := range cohort {
		if score < 1.0 || score > 9.9 {
			t.Fatalf("cohort score %v outside [1.0, 9.9]", score)
		}
	}
}
