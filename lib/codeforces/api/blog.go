package api

import (
	"context"

	"codeforces-client/lib/codeforces/model"
	"codeforces-client/lib/codeforces/signer"
)

// BlogEntryComments returns the comments under a blog entry.
func (c *Client) BlogEntryComments(ctx context.Context, blogEntryId int) ([]model.Comment, error) {
	err := requireId("blogEntryId", blogEntryId)
	if err != nil {
		return nil, err
	}
	return callList(ctx, c, "blogEntry.comments", signer.Fields{
		"blogEntryId": signer.Int(blogEntryId),
	}, model.CommentFromMap)
}

// BlogEntryView returns a blog entry along with its content.
func (c *Client) BlogEntryView(ctx context.Context, blogEntryId int) (*model.BlogEntry, error) {
	err := requireId("blogEntryId", blogEntryId)
	if err != nil {
		return nil, err
	}
	return callObject(ctx, c, "blogEntry.view", signer.Fields{
		"blogEntryId": signer.Int(blogEntryId),
	}, model.BlogEntryFromMap)
}

// RecentActions returns up to maxCount of the latest actions, maxCount is at most 100.
func (c *Client) RecentActions(ctx context.Context, maxCount int) ([]model.RecentAction, error) {
	err := checkCount("maxCount", maxCount, MaxRecentActions)
	if err != nil {
		return nil, err
	}
	return callList(ctx, c, "recentActions", signer.Fields{
		"maxCount": signer.Int(maxCount),
	}, model.RecentActionFromMap)
}
