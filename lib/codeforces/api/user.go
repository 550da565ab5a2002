package api

import (
	"context"
	"fmt"

	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/model"
	"codeforces-client/lib/codeforces/signer"
)

func (c *Client) UserBlogEntries(ctx context.Context, handle string) ([]model.BlogEntry, error) {
	err := requireHandle("handle", handle)
	if err != nil {
		return nil, err
	}
	return callList(ctx, c, "user.blogEntries", signer.Fields{
		"handle": signer.String(handle),
	}, model.BlogEntryFromMap)
}

// UserFriends returns the friends of the authorized user.
func (c *Client) UserFriends(ctx context.Context, onlyOnline bool) ([]string, error) {
	err := c.requireAuth("user.friends")
	if err != nil {
		return nil, err
	}
	return callStrings(ctx, c, "user.friends", signer.Fields{
		"onlyOnline": signer.Bool(onlyOnline),
	})
}

// UserInfo returns one user per handle, in the order given. At most MaxHandles
// handles can be requested at once.
func (c *Client) UserInfo(ctx context.Context, handles []string) ([]model.User, error) {
	if len(handles) == 0 {
		return nil, fmt.Errorf("%w: at least one handle is required", cferr.ErrMissingArgument)
	}
	err := checkHandles("handles", handles)
	if err != nil {
		return nil, err
	}
	return callList(ctx, c, "user.info", signer.Fields{
		"handles": signer.List(handles...),
	}, model.UserFromMap)
}

type UserRatedListParams struct {
	// only users that took part in a rated contest during the last month
	ActiveOnly     bool
	IncludeRetired bool
	// optional, only the participants of this contest
	ContestId int
}

// UserRatedList returns rated users sorted by rating, descending.
func (c *Client) UserRatedList(ctx context.Context, params UserRatedListParams) ([]model.User, error) {
	err := checkNonNegative("contestId", params.ContestId)
	if err != nil {
		return nil, err
	}

	fields := signer.Fields{
		"activeOnly":     signer.Bool(params.ActiveOnly),
		"includeRetired": signer.Bool(params.IncludeRetired),
	}
	setInt(fields, "contestId", params.ContestId)
	return callList(ctx, c, "user.ratedList", fields, model.UserFromMap)
}

// UserRating returns the rating history of a user.
func (c *Client) UserRating(ctx context.Context, handle string) ([]model.RatingChange, error) {
	err := requireHandle("handle", handle)
	if err != nil {
		return nil, err
	}
	return callList(ctx, c, "user.rating", signer.Fields{
		"handle": signer.String(handle),
	}, model.RatingChangeFromMap)
}

type UserStatusParams struct {
	Handle string
	From   int
	Count  int
}

// UserStatus returns the submissions of a user, newest first.
func (c *Client) UserStatus(ctx context.Context, params UserStatusParams) ([]model.Submission, error) {
	err := firstErr(
		requireHandle("handle", params.Handle),
		checkNonNegative("from", params.From),
		checkNonNegative("count", params.Count),
	)
	if err != nil {
		return nil, err
	}

	fields := signer.Fields{"handle": signer.String(params.Handle)}
	setInt(fields, "from", params.From)
	setInt(fields, "count", params.Count)
	return callList(ctx, c, "user.status", fields, model.SubmissionFromMap)
}
