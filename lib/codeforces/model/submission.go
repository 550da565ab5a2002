package model

type Submission struct {
	Id                  int
	ContestId           *int
	CreationTimeSeconds int64
	RelativeTimeSeconds int64
	Problem             Problem
	Author              Party
	ProgrammingLanguage string
	// absent while the submission is still in the queue
	Verdict             *string
	Testset             string
	PassedTestCount     int
	TimeConsumedMillis  int
	MemoryConsumedBytes int64
	Points              *float64
}

func SubmissionFromMap(raw map[string]any) (*Submission, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Submission", raw)
	s := &Submission{
		Id:                  req(f, "id", kInt),
		ContestId:           opt(f, "contestId", kInt),
		CreationTimeSeconds: req(f, "creationTimeSeconds", kInt64),
		RelativeTimeSeconds: req(f, "relativeTimeSeconds", kInt64),
		Problem:             reqObject(f, "problem", ProblemFromMap),
		Author:              reqObject(f, "author", PartyFromMap),
		ProgrammingLanguage: req(f, "programmingLanguage", kString),
		Verdict:             opt(f, "verdict", kString),
		Testset:             req(f, "testset", kString),
		PassedTestCount:     req(f, "passedTestCount", kInt),
		TimeConsumedMillis:  req(f, "timeConsumedMillis", kInt),
		MemoryConsumedBytes: req(f, "memoryConsumedBytes", kInt64),
		Points:              opt(f, "points", kFloat),
	}
	if f.err != nil {
		return nil, f.err
	}
	return s, nil
}

func (s Submission) ToMap() map[string]any {
	m := map[string]any{
		"id":                    s.Id,
		"creation_time_seconds": s.CreationTimeSeconds,
		"relative_time_seconds": s.RelativeTimeSeconds,
		"problem":               s.Problem.ToMap(),
		"author":                s.Author.ToMap(),
		"programming_language":  s.ProgrammingLanguage,
		"testset":               s.Testset,
		"passed_test_count":     s.PassedTestCount,
		"time_consumed_millis":  s.TimeConsumedMillis,
		"memory_consumed_bytes": s.MemoryConsumedBytes,
	}
	setOpt(m, "contest_id", s.ContestId)
	setOpt(m, "verdict", s.Verdict)
	setOpt(m, "points", s.Points)
	return m
}
