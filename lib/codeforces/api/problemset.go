package api

import (
	"context"

	"codeforces-client/lib/codeforces/model"
	"codeforces-client/lib/codeforces/signer"
)

type ProblemsetProblemsParams struct {
	// only problems carrying all of these tags
	Tags []string
	// an additional archive, like "acmsguru"
	ProblemsetName string
}

// ProblemsetProblems returns the problems of the problemset together with their
// solve counts.
func (c *Client) ProblemsetProblems(ctx context.Context, params ProblemsetProblemsParams) (*model.Problemset, error) {
	fields := signer.Fields{}
	setList(fields, "tags", params.Tags)
	setString(fields, "problemsetName", params.ProblemsetName)
	return callObject(ctx, c, "problemset.problems", fields, model.ProblemsetFromMap)
}

type ProblemsetRecentStatusParams struct {
	// required, at most MaxRecentStatusCount
	Count          int
	ProblemsetName string
}

func (c *Client) ProblemsetRecentStatus(ctx context.Context, params ProblemsetRecentStatusParams) ([]model.Submission, error) {
	err := checkCount("count", params.Count, MaxRecentStatusCount)
	if err != nil {
		return nil, err
	}

	fields := signer.Fields{"count": signer.Int(params.Count)}
	setString(fields, "problemsetName", params.ProblemsetName)
	return callList(ctx, c, "problemset.recentStatus", fields, model.SubmissionFromMap)
}
