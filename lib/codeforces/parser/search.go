package parser

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/model"

	"github.com/antzucaro/matchr"
)

type ProblemMatch struct {
	Problem model.Problem
	// Jaro-Winkler similarity of the names, 1 is an exact match
	Score float64
}

// SearchProblems ranks every problem by how closely its name matches query and
// returns the best limit of them. It shares the problem list loaded for GetTags.
func (p *Parser) SearchProblems(ctx context.Context, query string, limit int) ([]ProblemMatch, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", cferr.ErrMissingArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", cferr.ErrInvalidArgument, limit)
	}

	catalog, _, err := p.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]ProblemMatch, len(catalog))
	for i, problem := range catalog {
		matches[i] = ProblemMatch{
			Problem: problem,
			Score:   matchr.JaroWinkler(query, strings.ToLower(problem.Name), false),
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
