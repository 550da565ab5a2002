package api

import (
	"context"

	"codeforces-client/lib/codeforces/model"
	"codeforces-client/lib/codeforces/signer"
)

// ContestHacks returns the hacks in a contest. asManager needs credentials.
func (c *Client) ContestHacks(ctx context.Context, contestId int, asManager bool) ([]model.Hack, error) {
	err := requireId("contestId", contestId)
	if err != nil {
		return nil, err
	}
	if asManager {
		err = c.requireAuth("contest.hacks as manager")
		if err != nil {
			return nil, err
		}
	}

	fields := signer.Fields{"contestId": signer.Int(contestId)}
	setFlag(fields, "asManager", asManager)
	return callList(ctx, c, "contest.hacks", fields, model.HackFromMap)
}

// ContestList returns every contest, or every gym contest when gym is set.
func (c *Client) ContestList(ctx context.Context, gym bool) ([]model.Contest, error) {
	return callList(ctx, c, "contest.list", signer.Fields{
		"gym": signer.Bool(gym),
	}, model.ContestFromMap)
}

func (c *Client) ContestRatingChanges(ctx context.Context, contestId int) ([]model.RatingChange, error) {
	err := requireId("contestId", contestId)
	if err != nil {
		return nil, err
	}
	return callList(ctx, c, "contest.ratingChanges", signer.Fields{
		"contestId": signer.Int(contestId),
	}, model.RatingChangeFromMap)
}

type ContestStandingsParams struct {
	ContestId int
	// 1-based index of the first row, 0 leaves it unset
	From  int
	Count int
	// at most MaxHandles
	Handles        []string
	Room           int
	ShowUnofficial bool
	AsManager      bool
}

func (c *Client) ContestStandings(ctx context.Context, params ContestStandingsParams) (*model.Standings, error) {
	err := firstErr(
		requireId("contestId", params.ContestId),
		checkNonNegative("from", params.From),
		checkNonNegative("count", params.Count),
		checkNonNegative("room", params.Room),
		checkHandles("handles", params.Handles),
	)
	if err != nil {
		return nil, err
	}
	if params.AsManager {
		err = c.requireAuth("contest.standings as manager")
		if err != nil {
			return nil, err
		}
	}

	fields := signer.Fields{
		"contestId":      signer.Int(params.ContestId),
		"showUnofficial": signer.Bool(params.ShowUnofficial),
	}
	setInt(fields, "from", params.From)
	setInt(fields, "count", params.Count)
	setList(fields, "handles", params.Handles)
	setInt(fields, "room", params.Room)
	setFlag(fields, "asManager", params.AsManager)

	return callObject(ctx, c, "contest.standings", fields, model.StandingsFromMap)
}

type ContestStatusParams struct {
	ContestId int
	// optional, only this user's submissions
	Handle    string
	From      int
	Count     int
	AsManager bool
}

func (c *Client) ContestStatus(ctx context.Context, params ContestStatusParams) ([]model.Submission, error) {
	err := firstErr(
		requireId("contestId", params.ContestId),
		checkNonNegative("from", params.From),
		checkNonNegative("count", params.Count),
	)
	if err != nil {
		return nil, err
	}
	if params.AsManager {
		err = c.requireAuth("contest.status as manager")
		if err != nil {
			return nil, err
		}
	}

	fields := signer.Fields{"contestId": signer.Int(params.ContestId)}
	setString(fields, "handle", params.Handle)
	setInt(fields, "from", params.From)
	setInt(fields, "count", params.Count)
	setFlag(fields, "asManager", params.AsManager)

	return callList(ctx, c, "contest.status", fields, model.SubmissionFromMap)
}
