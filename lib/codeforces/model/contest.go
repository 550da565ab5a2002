package model

type Contest struct {
	Id   int
	Name string
	// CF, IOI or ICPC
	Type string
	// BEFORE, CODING, PENDING_SYSTEM_TEST, SYSTEM_TEST or FINISHED
	Phase               string
	Frozen              bool
	DurationSeconds     int64
	StartTimeSeconds    *int64
	RelativeTimeSeconds *int64
	PreparedBy          *string
	WebsiteUrl          *string
	Description         *string
	Difficulty          *int
	Kind                *string
	IcpcRegion          *string
	Country             *string
	City                *string
	Season              *string
}

func ContestFromMap(raw map[string]any) (*Contest, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Contest", raw)
	c := &Contest{
		Id:                  req(f, "id", kInt),
		Name:                req(f, "name", kString),
		Type:                req(f, "type", kString),
		Phase:               req(f, "phase", kString),
		Frozen:              req(f, "frozen", kBool),
		DurationSeconds:     req(f, "durationSeconds", kInt64),
		StartTimeSeconds:    opt(f, "startTimeSeconds", kInt64),
		RelativeTimeSeconds: opt(f, "relativeTimeSeconds", kInt64),
		PreparedBy:          opt(f, "preparedBy", kString),
		WebsiteUrl:          opt(f, "websiteUrl", kString),
		Description:         opt(f, "description", kString),
		Difficulty:          opt(f, "difficulty", kInt),
		Kind:                opt(f, "kind", kString),
		IcpcRegion:          opt(f, "icpcRegion", kString),
		Country:             opt(f, "country", kString),
		City:                opt(f, "city", kString),
		Season:              opt(f, "season", kString),
	}
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func (c Contest) ToMap() map[string]any {
	m := map[string]any{
		"id":               c.Id,
		"name":             c.Name,
		"type":             c.Type,
		"phase":            c.Phase,
		"frozen":           c.Frozen,
		"duration_seconds": c.DurationSeconds,
	}
	setOpt(m, "start_time_seconds", c.StartTimeSeconds)
	setOpt(m, "relative_time_seconds", c.RelativeTimeSeconds)
	setOpt(m, "prepared_by", c.PreparedBy)
	setOpt(m, "website_url", c.WebsiteUrl)
	setOpt(m, "description", c.Description)
	setOpt(m, "difficulty", c.Difficulty)
	setOpt(m, "kind", c.Kind)
	setOpt(m, "icpc_region", c.IcpcRegion)
	setOpt(m, "country", c.Country)
	setOpt(m, "city", c.City)
	setOpt(m, "season", c.Season)
	return m
}

type RatingChange struct {
	ContestId               int
	ContestName             string
	Handle                  string
	Rank                    int
	RatingUpdateTimeSeconds int64
	OldRating               int
	NewRating               int
}

func RatingChangeFromMap(raw map[string]any) (*RatingChange, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("RatingChange", raw)
	r := &RatingChange{
		ContestId:               req(f, "contestId", kInt),
		ContestName:             req(f, "contestName", kString),
		Handle:                  req(f, "handle", kString),
		Rank:                    req(f, "rank", kInt),
		RatingUpdateTimeSeconds: req(f, "ratingUpdateTimeSeconds", kInt64),
		OldRating:               req(f, "oldRating", kInt),
		NewRating:               req(f, "newRating", kInt),
	}
	if f.err != nil {
		return nil, f.err
	}
	return r, nil
}

func (r RatingChange) Delta() int {
	return r.NewRating - r.OldRating
}

func (r RatingChange) ToMap() map[string]any {
	return map[string]any{
		"contest_id":                 r.ContestId,
		"contest_name":               r.ContestName,
		"handle":                     r.Handle,
		"rank":                       r.Rank,
		"rating_update_time_seconds": r.RatingUpdateTimeSeconds,
		"old_rating":                 r.OldRating,
		"new_rating":                 r.NewRating,
	}
}

type Hack struct {
	Id                  int
	CreationTimeSeconds int64
	Hacker              Party
	Defender            Party
	Verdict             *string
	Problem             Problem
	Test                *string
	// keys are "manual", "protocol" and "verdict"
	JudgeProtocol map[string]string
}

func HackFromMap(raw map[string]any) (*Hack, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Hack", raw)
	h := &Hack{
		Id:                  req(f, "id", kInt),
		CreationTimeSeconds: req(f, "creationTimeSeconds", kInt64),
		Hacker:              reqObject(f, "hacker", PartyFromMap),
		Defender:            reqObject(f, "defender", PartyFromMap),
		Verdict:             opt(f, "verdict", kString),
		Problem:             reqObject(f, "problem", ProblemFromMap),
		Test:                opt(f, "test", kString),
	}
	protocol := opt(f, "judgeProtocol", kStringMap)
	if protocol != nil {
		h.JudgeProtocol = *protocol
	}
	if f.err != nil {
		return nil, f.err
	}
	return h, nil
}

func (h Hack) ToMap() map[string]any {
	m := map[string]any{
		"id":                    h.Id,
		"creation_time_seconds": h.CreationTimeSeconds,
		"hacker":                h.Hacker.ToMap(),
		"defender":              h.Defender.ToMap(),
		"problem":               h.Problem.ToMap(),
	}
	setOpt(m, "verdict", h.Verdict)
	setOpt(m, "test", h.Test)
	if h.JudgeProtocol != nil {
		protocol := make(map[string]string, len(h.JudgeProtocol))
		for k, v := range h.JudgeProtocol {
			protocol[k] = v
		}
		m["judge_protocol"] = protocol
	}
	return m
}
