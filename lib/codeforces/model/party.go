package model

type Member struct {
	Handle string
	Name   *string
}

func MemberFromMap(raw map[string]any) (*Member, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Member", raw)
	m := &Member{
		Handle: req(f, "handle", kString),
		Name:   opt(f, "name", kString),
	}
	if f.err != nil {
		return nil, f.err
	}
	return m, nil
}

func (m Member) ToMap() map[string]any {
	out := map[string]any{"handle": m.Handle}
	setOpt(out, "name", m.Name)
	return out
}

// Party is a contestant: a single user or a team.
type Party struct {
	ContestId *int
	Members   []Member
	// CONTESTANT, PRACTICE, VIRTUAL, MANAGER or OUT_OF_COMPETITION
	ParticipantType  string
	TeamId           *int
	TeamName         *string
	Ghost            bool
	Room             *int
	StartTimeSeconds *int64
}

func PartyFromMap(raw map[string]any) (*Party, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Party", raw)
	p := &Party{
		ContestId:        opt(f, "contestId", kInt),
		Members:          listOf(f, "members", MemberFromMap, true),
		ParticipantType:  req(f, "participantType", kString),
		TeamId:           opt(f, "teamId", kInt),
		TeamName:         opt(f, "teamName", kString),
		Ghost:            req(f, "ghost", kBool),
		Room:             opt(f, "room", kInt),
		StartTimeSeconds: opt(f, "startTimeSeconds", kInt64),
	}
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

// Handles returns the member handles in order.
func (p Party) Handles() []string {
	out := make([]string, len(p.Members))
	for i, m := range p.Members {
		out[i] = m.Handle
	}
	return out
}

func (p Party) ToMap() map[string]any {
	m := map[string]any{
		"members":          toMaps(p.Members),
		"participant_type": p.ParticipantType,
		"ghost":            p.Ghost,
	}
	setOpt(m, "contest_id", p.ContestId)
	setOpt(m, "team_id", p.TeamId)
	setOpt(m, "team_name", p.TeamName)
	setOpt(m, "room", p.Room)
	setOpt(m, "start_time_seconds", p.StartTimeSeconds)
	return m
}
