package routepath

import (
	"testing"

	"github.com/sofealabs/impactboard/internal/impact"
)

func TestAwardeeEscapesSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want string
	}{
		{"AIS-Awardee-7", "/awardee/AIS-Awardee-7"},
		{" AIS-Awardee-7 ", "/awardee/AIS-Awardee-7"},
		{"a b", "/awardee/a%20b"},
	}
	for _, tc := range tests {
		if got := Awardee(tc.id); got != tc.want {
			t.Fatalf("Awardee(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestProgramRoutesCoverAllPrograms(t *testing.T) {
	t.Parallel()

	want := map[impact.ProgramID]string{
		impact.ProgramAIS: AIS,
		impact.ProgramEIS: EIS,
		impact.ProgramHIS: HIS,
		impact.ProgramSIS: SIS,
	}
	for id, path := range want {
		if got := Program(id); got != path {
			t.Fatalf("Program(%q) = %q, want %q", id, got, path)
		}
	}
	if got := Program(impact.ProgramID("XIS")); got != Overview {
		t.Fatalf("Program(XIS) = %q, want overview fallback", got)
	}
}

func TestDrilldownEncodesElementKey(t *testing.T) {
	t.Parallel()

	got := Drilldown("score:AIS-Awardee-7")
	want := "/overview/drilldown?element=score%3AAIS-Awardee-7"
	if got != want {
		t.Fatalf("Drilldown() = %q, want %q", got, want)
	}
}
