package model

type Problem struct {
	ContestId      *int
	ProblemsetName *string
	// usually a letter with an optional digit, like "A" or "C1"
	Index string
	Name  string
	// PROGRAMMING or QUESTION
	Type   string
	Points *float64
	Rating *int
	Tags   []string
}

func ProblemFromMap(raw map[string]any) (*Problem, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Problem", raw)
	p := &Problem{
		ContestId:      opt(f, "contestId", kInt),
		ProblemsetName: opt(f, "problemsetName", kString),
		Index:          req(f, "index", kString),
		Name:           req(f, "name", kString),
		Type:           req(f, "type", kString),
		Points:         opt(f, "points", kFloat),
		Rating:         opt(f, "rating", kInt),
	}
	tags := opt(f, "tags", kStrings)
	if tags != nil {
		p.Tags = *tags
	}
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

func (p Problem) ToMap() map[string]any {
	m := map[string]any{
		"index": p.Index,
		"name":  p.Name,
		"type":  p.Type,
	}
	setOpt(m, "contest_id", p.ContestId)
	setOpt(m, "problemset_name", p.ProblemsetName)
	setOpt(m, "points", p.Points)
	setOpt(m, "rating", p.Rating)
	if p.Tags != nil {
		m["tags"] = append([]string{}, p.Tags...)
	}
	return m
}

type ProblemStatistic struct {
	ContestId   *int
	Index       string
	SolvedCount int
}

func ProblemStatisticFromMap(raw map[string]any) (*ProblemStatistic, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("ProblemStatistic", raw)
	s := &ProblemStatistic{
		ContestId:   opt(f, "contestId", kInt),
		Index:       req(f, "index", kString),
		SolvedCount: req(f, "solvedCount", kInt),
	}
	if f.err != nil {
		return nil, f.err
	}
	return s, nil
}

func (s ProblemStatistic) ToMap() map[string]any {
	m := map[string]any{
		"index":        s.Index,
		"solved_count": s.SolvedCount,
	}
	setOpt(m, "contest_id", s.ContestId)
	return m
}

// Problemset is the result of problemset.problems, both lists share the same order.
type Problemset struct {
	Problems          []Problem
	ProblemStatistics []ProblemStatistic
}

func ProblemsetFromMap(raw map[string]any) (*Problemset, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Problemset", raw)
	p := &Problemset{
		Problems:          listOf(f, "problems", ProblemFromMap, true),
		ProblemStatistics: listOf(f, "problemStatistics", ProblemStatisticFromMap, true),
	}
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

func (p Problemset) ToMap() map[string]any {
	return map[string]any{
		"problems":           toMaps(p.Problems),
		"problem_statistics": toMaps(p.ProblemStatistics),
	}
}
