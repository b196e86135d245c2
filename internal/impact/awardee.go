package impact

// Publication is a sub-record shown only on the awardee detail page.
type Publication struct {
	Year    int
	Journal string
	ORCR    float64
}

// Metrics carries the summary figures displayed on awardee cards and tables.
type Metrics struct {
	// Score is the composite impact score on a 0-10 scale.
	Score float64
	// Publications counts peer-reviewed papers attributed to the awardee.
	Publications int
	// Grants counts active federal grants.
	Grants int
	// CapitalM is venture capital raised, in millions of USD.
	CapitalM float64
}

// Awardee is one funded scientist in the demo dataset.
type Awardee struct {
	// ID is the stable drilldown key, formatted {PROGRAM}-Awardee-{n}.
	ID      string
	Name    string
	Program ProgramID
	Field   string
	// AwardYear is the year funding was granted.
	AwardYear int
	// FirstPublicationYear anchors the career timeline on the detail page.
	FirstPubYear int
	Metrics      Metrics
	Publications []Publication
}
