package impact

import (
	"fmt"
	"math/rand"
)

// cohortSize matches the "1,245 awardees supported" figure quoted on the
// overview page.
const cohortSize = 1245

// cohortSeed keeps the demo histogram stable across runs.
const cohortSeed = 7

// Fixtures builds the static demo dataset. It panics on invalid fixture
// records since those are programming errors, not runtime conditions.
func Fixtures() *Store {
	store, err := NewStore(fixturePrograms(), fixtureAwardees(), fixtureCohort())
	if err != nil {
		panic(fmt.Sprintf("impact fixtures: %v", err))
	}
	return store
}

func fixturePrograms() []Program {
	return []Program{
		{ID: ProgramAIS, Name: "Academic Impact", Series: yearSeries(2018, 210, 245, 262, 301, 334, 352)},
		{ID: ProgramEIS, Name: "Economic Impact", Series: yearSeries(2018, 64, 71, 90, 102, 118, 131)},
		{ID: ProgramHIS, Name: "Health Impact", Series: yearSeries(2018, 88, 97, 104, 121, 129, 142)},
		{ID: ProgramSIS, Name: "Social Impact", Series: yearSeries(2018, 31, 38, 42, 47, 55, 61)},
	}
}

func yearSeries(start int, values ...float64) []MetricPoint {
	points := make([]MetricPoint, 0, len(values))
	for i, value := range values {
		points = append(points, MetricPoint{Period: start + i, Value: value})
	}
	return points
}

// awardeeRow is the compact fixture form expanded by fixtureAwardees.
type awardeeRow struct {
	name      string
	field     string
	awardYear int
	firstPub  int
	score     float64
	pubs      int
	grants    int
	capitalM  float64
}

func fixtureAwardees() []Awardee {
	rows := map[ProgramID][]awardeeRow{
		ProgramAIS: {
			{"Dr. Sarah Chen", "Oncology", 2019, 2014, 9.4, 48, 3, 0},
			{"Dr. Emily Johnson", "Immunology", 2020, 2016, 8.9, 41, 2, 12.1},
			{"Dr. James Washington", "Oncology", 2018, 2013, 8.6, 44, 4, 0},
			{"Dr. Diego Rossi", "Neuroscience", 2021, 2017, 7.8, 29, 2, 0},
			{"Dr. Elena Park", "Oncology", 2022, 2018, 7.5, 22, 1, 0},
			{"Dr. Farah Khan", "Immunology", 2020, 2015, 8.1, 35, 2, 3.5},
			{"Dr. Miguel Alvarez", "Neuroscience", 2019, 2015, 7.2, 27, 1, 0},
			{"Dr. Priya Sharma", "Oncology", 2023, 2019, 6.9, 14, 1, 0},
		},
		ProgramEIS: {
			{"Dr. Noah Lee", "Immunology", 2019, 2014, 8.8, 31, 2, 12.1},
			{"Dr. Lila Patel", "Oncology", 2021, 2016, 8.2, 24, 1, 8.7},
			{"Dr. Marcus Webb", "Neuroscience", 2018, 2012, 7.9, 33, 2, 8.7},
			{"Dr. Ana Oliveira", "Oncology", 2022, 2018, 7.1, 18, 1, 3.5},
			{"Dr. Kenji Tanaka", "Immunology", 2020, 2016, 6.8, 21, 1, 0},
			{"Dr. Ingrid Larsen", "Neuroscience", 2023, 2019, 6.4, 11, 1, 0},
		},
		ProgramHIS: {
			{"Dr. Amara Diallo", "Oncology", 2019, 2015, 8.5, 26, 3, 0},
			{"Dr. Tomas Novak", "Immunology", 2020, 2016, 7.7, 23, 2, 0},
			{"Dr. Rosa Mendes", "Oncology", 2018, 2013, 7.4, 30, 2, 0},
			{"Dr. Wei Zhang", "Neuroscience", 2022, 2017, 6.9, 16, 1, 0},
			{"Dr. Hannah Cohen", "Immunology", 2021, 2017, 6.6, 19, 1, 0},
		},
		ProgramSIS: {
			{"Dr. Omar Haddad", "Neuroscience", 2020, 2015, 7.6, 20, 1, 0},
			{"Dr. Grace Okafor", "Oncology", 2019, 2014, 7.3, 25, 2, 0},
			{"Dr. Lucia Fernandez", "Immunology", 2021, 2017, 6.7, 15, 1, 0},
			{"Dr. Ivan Petrov", "Oncology", 2022, 2018, 6.3, 12, 1, 0},
			{"Dr. Mei Lin", "Neuroscience", 2023, 2019, 6.1, 9, 1, 0},
		},
	}

	var out []Awardee
	for _, program := range ProgramIDs() {
		for i, row := range rows[program] {
			id := fmt.Sprintf("%s-Awardee-%d", program, i+1)
			out = append(out, Awardee{
				ID:           id,
				Name:         row.name,
				Program:      program,
				Field:        row.field,
				AwardYear:    row.awardYear,
				FirstPubYear: row.firstPub,
				Metrics: Metrics{
					Score:        row.score,
					Publications: row.pubs,
					Grants:       row.grants,
					CapitalM:     row.capitalM,
				},
				Publications: fixturePublications(id, row.firstPub),
			})
		}
	}
	return out
}

var fixtureJournals = []string{"Nature", "Cancer Cell", "Cell Reports", "PNAS", "Science Advances"}

// fixturePublications derives a small deterministic publication list from
// the awardee id so detail pages stay stable between runs.
func fixturePublications(id string, firstPub int) []Publication {
	rng := rand.New(rand.NewSource(idSeed(id)))
	pubs := make([]Publication, 0, len(fixtureJournals))
	for i, journal := range fixtureJournals {
		pubs = append(pubs, Publication{
			Year:    firstPub + i,
			Journal: journal,
			ORCR:    round2(0.8 + rng.Float64()*3.3),
		})
	}
	return pubs
}

// fixtureCohort draws the overview histogram sample: roughly normal around
// 7.8 with spread 1.2, clipped to the 1.0-9.9 score range.
func fixtureCohort() []float64 {
	rng := rand.New(rand.NewSource(cohortSeed))
	cohort := make([]float64, cohortSize)
	for i := range cohort {
		score := 7.8 + rng.NormFloat64()*1.2
		if score < 1.0 {
			score = 1.0
		}
		if score > 9.9 {
			score = 9.9
		}
		cohort[i] = round2(score)
	}
	return cohort
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
