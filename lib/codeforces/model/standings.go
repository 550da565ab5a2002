package model

type ProblemResult struct {
	Points               float64
	Penalty              *int
	RejectedAttemptCount int
	// PRELIMINARY or FINAL
	Type                      string
	BestSubmissionTimeSeconds *int64
}

func ProblemResultFromMap(raw map[string]any) (*ProblemResult, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("ProblemResult", raw)
	r := &ProblemResult{
		Points:                    req(f, "points", kFloat),
		Penalty:                   opt(f, "penalty", kInt),
		RejectedAttemptCount:      req(f, "rejectedAttemptCount", kInt),
		Type:                      req(f, "type", kString),
		BestSubmissionTimeSeconds: opt(f, "bestSubmissionTimeSeconds", kInt64),
	}
	if f.err != nil {
		return nil, f.err
	}
	return r, nil
}

func (r ProblemResult) ToMap() map[string]any {
	m := map[string]any{
		"points":                 r.Points,
		"rejected_attempt_count": r.RejectedAttemptCount,
		"type":                   r.Type,
	}
	setOpt(m, "penalty", r.Penalty)
	setOpt(m, "best_submission_time_seconds", r.BestSubmissionTimeSeconds)
	return m
}

type RanklistRow struct {
	Party                     Party
	Rank                      int
	Points                    float64
	Penalty                   int
	SuccessfulHackCount       int
	UnsuccessfulHackCount     int
	ProblemResults            []ProblemResult
	LastSubmissionTimeSeconds *int64
}

func RanklistRowFromMap(raw map[string]any) (*RanklistRow, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("RanklistRow", raw)
	r := &RanklistRow{
		Party:                     reqObject(f, "party", PartyFromMap),
		Rank:                      req(f, "rank", kInt),
		Points:                    req(f, "points", kFloat),
		Penalty:                   req(f, "penalty", kInt),
		SuccessfulHackCount:       req(f, "successfulHackCount", kInt),
		UnsuccessfulHackCount:     req(f, "unsuccessfulHackCount", kInt),
		ProblemResults:            listOf(f, "problemResults", ProblemResultFromMap, true),
		LastSubmissionTimeSeconds: opt(f, "lastSubmissionTimeSeconds", kInt64),
	}
	if f.err != nil {
		return nil, f.err
	}
	return r, nil
}

func (r RanklistRow) ToMap() map[string]any {
	m := map[string]any{
		"party":                   r.Party.ToMap(),
		"rank":                    r.Rank,
		"points":                  r.Points,
		"penalty":                 r.Penalty,
		"successful_hack_count":   r.SuccessfulHackCount,
		"unsuccessful_hack_count": r.UnsuccessfulHackCount,
		"problem_results":         toMaps(r.ProblemResults),
	}
	setOpt(m, "last_submission_time_seconds", r.LastSubmissionTimeSeconds)
	return m
}

// Standings is the result of contest.standings. Rows[i].ProblemResults[j] belongs
// to Problems[j].
type Standings struct {
	Contest  Contest
	Problems []Problem
	Rows     []RanklistRow
}

func StandingsFromMap(raw map[string]any) (*Standings, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Standings", raw)
	s := &Standings{
		Contest:  reqObject(f, "contest", ContestFromMap),
		Problems: listOf(f, "problems", ProblemFromMap, true),
		Rows:     listOf(f, "rows", RanklistRowFromMap, true),
	}
	if f.err != nil {
		return nil, f.err
	}
	return s, nil
}

func (s Standings) ToMap() map[string]any {
	return map[string]any{
		"contest":  s.Contest.ToMap(),
		"problems": toMaps(s.Problems),
		"rows":     toMaps(s.Rows),
	}
}
