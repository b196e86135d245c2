// Package impact holds the static program and awardee dataset served by the
// dashboard, together with read-only lookup and aggregation operations.
//
// The dataset is built once at process start and never mutated, so a single
// Store value is safe for unsynchronized concurrent reads.
package impact

// ProgramID identifies one of the four impact sub-programs.
type ProgramID string

const (
	ProgramAIS ProgramID = "AIS"
	ProgramEIS ProgramID = "EIS"
	ProgramHIS ProgramID = "HIS"
	ProgramSIS ProgramID = "SIS"
)

// ProgramIDs returns the known program identifiers in display order.
func ProgramIDs() []ProgramID {
	return []ProgramID{ProgramAIS, ProgramEIS, ProgramHIS, ProgramSIS}
}

// ParseProgramID maps a raw tag to a known program identifier.
func ParseProgramID(raw string) (ProgramID, bool) {
	switch ProgramID(raw) {
	case ProgramAIS, ProgramEIS, ProgramHIS, ProgramSIS:
		return ProgramID(raw), true
	default:
		return "", false
	}
}

// MetricPoint is one (period, value) pair in a program metric series.
type MetricPoint struct {
	Period int
	Value  float64
}

// Program describes one impact sub-program and its metric series.
type Program struct {
	ID   ProgramID
	Name string
	// Series is the program's primary time-indexed metric, ordered by
	// ascending period.
	Series []MetricPoint
}
