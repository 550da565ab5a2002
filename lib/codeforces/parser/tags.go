package parser

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/model"
)

type problemKey struct {
	contestId int
	index     string
}

// the rating is kept apart from the tags so it can be added on lookup
type tagEntry struct {
	tags   []string
	rating *int
}

type tagIndex map[problemKey]tagEntry

func buildTagIndex(problems []model.Problem) tagIndex {
	index := make(tagIndex, len(problems))
	for _, problem := range problems {
		if problem.ContestId == nil {
			continue
		}
		key := problemKey{contestId: *problem.ContestId, index: problem.Index}
		index[key] = tagEntry{
			tags:   append([]string{}, problem.Tags...),
			rating: problem.Rating,
		}
	}
	return index
}

func (e tagEntry) render(includeRating bool) []string {
	out := make([]string, 0, len(e.tags)+1)
	out = append(out, e.tags...)
	if includeRating && e.rating != nil {
		out = append(out, fmt.Sprintf("*%d", *e.rating))
	}
	sort.Strings(out)
	return out
}

// IndexFromInt maps 0 to "A", 1 to "B" and so on.
func IndexFromInt(i int) (string, error) {
	if i < 0 || i >= 26 {
		return "", fmt.Errorf("%w: problem index %d is outside A-Z", cferr.ErrInvalidArgument, i)
	}
	return string(rune('A' + i)), nil
}

// NormalizeIndex turns a numeric index into its letter ("2" is "C") and capitalizes
// anything else ("c1" is "C1").
func NormalizeIndex(index string) (string, error) {
	if index == "" {
		return "", fmt.Errorf("%w: problem index is empty", cferr.ErrMissingArgument)
	}
	if i, err := strconv.Atoi(index); err == nil {
		return IndexFromInt(i)
	}
	first, size := utf8.DecodeRuneInString(index)
	return string(unicode.ToUpper(first)) + strings.ToLower(index[size:]), nil
}

// GetTags returns the sorted tags of a problem, with a "*<rating>" tag when
// includeRating is set. A problem missing under contestId is looked up again under
// contestId-1, since problems shared between divisions are listed under one of them.
func (p *Parser) GetTags(ctx context.Context, contestId int, index string, includeRating bool) ([]string, error) {
	normalized, err := NormalizeIndex(index)
	if err != nil {
		return nil, err
	}

	_, tags, err := p.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range []int{contestId, contestId - 1} {
		entry, ok := tags[problemKey{contestId: id, index: normalized}]
		if ok {
			return entry.render(includeRating), nil
		}
	}
	return nil, fmt.Errorf(
		"%w: no tags for problem %d%s",
		cferr.ErrLookupFailure, contestId, normalized,
	)
}
