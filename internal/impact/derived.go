package impact

import "math/rand"

// BucketScore pairs one program bucket with an awardee's 0-10 score in it.
type BucketScore struct {
	Program ProgramID
	Score   float64
}

// Breakdown derives the per-bucket scores shown on the detail page. The
// values come from the awardee id so repeated renders agree, and the
// awardee's own program is always the strongest bucket.
func Breakdown(a Awardee) []BucketScore {
	rng := rand.New(rand.NewSource(idSeed(a.ID)))
	out := make([]BucketScore, 0, len(ProgramIDs()))
	for _, program := range ProgramIDs() {
		score := a.Metrics.Score
		if program != a.Program {
			score = round2(a.Metrics.Score * (0.45 + rng.Float64()*0.4))
		}
		out = append(out, BucketScore{Program: program, Score: score})
	}
	return out
}

// Timeline derives the cumulative publication and grant series for the
// career chart, spanning first publication year through three years past
// the award.
func Timeline(a Awardee) (publications, grants []MetricPoint) {
	rng := rand.New(rand.NewSource(idSeed(a.ID) + 1))
	start, end := a.FirstPubYear, a.AwardYear+3
	if end < start {
		end = start
	}
	var pubTotal, grantTotal float64
	for year := start; year <= end; year++ {
		pubTotal += float64(rng.Intn(3))
		if rng.Float64() < 0.4 {
			grantTotal++
		}
		publications = append(publications, MetricPoint{Period: year, Value: pubTotal})
		grants = append(grants, MetricPoint{Period: year, Value: grantTotal})
	}
	return publications, grants
}

func idSeed(id string) int64 {
	var seed int64
	for _, r := range id {
		seed = seed*31 + int64(r)
	}
	return seed
}
