// Package parser extracts what the codeforces API does not expose: submission source
// code, read from the rendered submission page, and a per-problem tag index.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"codeforces-client/internal/components/telemetry"
	"codeforces-client/lib/codeforces/api"
	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/model"
	"codeforces-client/lib/htmlutil"
	"codeforces-client/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_parser_get_solution = "parser.get-solution"
	report_parser_load_catalog = "parser.load-catalog"
	report_parser_tag_index    = "parser.tag-index"
)

const DefaultBaseUrl = "https://codeforces.com"

// ProblemSource supplies the complete problem list, *api.Client implements it.
type ProblemSource interface {
	ProblemsetProblems(ctx context.Context, params api.ProblemsetProblemsParams) (*model.Problemset, error)
}

type Options struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// required for GetTags and SearchProblems
	Problems ProblemSource

	Timeout   time.Duration
	Limiter   *rate.Limiter
	Output    restyutil.InstrumentOutput
	Telemetry telemetry.API
}

type Parser struct {
	http     *resty.Client
	problems ProblemSource
	tel      telemetry.API

	lock    sync.Mutex
	catalog []model.Problem
	index   tagIndex
}

func New(opts Options) (*Parser, error) {
	tel := telemetry.NewScopedAPI("codeforces_parser", telemetry.OrDefault(opts.Telemetry))

	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client.SetTimeout(timeout)

	if opts.Limiter != nil {
		limiter := opts.Limiter
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}
	telemetry.InstrumentResty(client, tel)
	if opts.Output != nil {
		restyutil.InstrumentClient(client, opts.Output)
	}

	return &Parser{
		http:     client,
		problems: opts.Problems,
		tel:      tel,
	}, nil
}

// GetSolution returns the source code of a submission with carriage returns removed.
// Wrong identifiers fail with cferr.ErrIncorrectReference, any other refused fetch
// with *cferr.UnavailableError.
func (p *Parser) GetSolution(ctx context.Context, contestId, submissionId int) (string, error) {
	if contestId <= 0 || submissionId <= 0 {
		return "", fmt.Errorf(
			"%w: contest id and submission id must be positive, got %d and %d",
			cferr.ErrMissingArgument, contestId, submissionId,
		)
	}

	res, err := p.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/contest/%d/submission/%d", contestId, submissionId))
	if err != nil {
		p.tel.ReportWarning(report_parser_get_solution, fmt.Errorf("fetch: %w", err))
		return "", &cferr.UnavailableError{Err: err}
	}
	// 404 is how codeforces answers an unknown contest, any other non-2xx page is
	// a refusal at the http layer (rate limit, cloudflare block, outage).
	if res.StatusCode() != http.StatusNotFound && (res.StatusCode() < 200 || res.StatusCode() > 299) {
		p.tel.ReportWarning(report_parser_get_solution, fmt.Errorf("fetch: status %s", res.Status()))
		return "", &cferr.UnavailableError{StatusCode: res.StatusCode(), Status: res.Status()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		p.tel.ReportBroken(report_parser_get_solution, fmt.Errorf("parse submission page: %w", err))
		return "", err
	}

	source := doc.Find("pre#program-source-text")
	if source.Length() == 0 {
		return "", fmt.Errorf(
			"%w: no source for submission %d in contest %d",
			cferr.ErrIncorrectReference, submissionId, contestId,
		)
	}
	return htmlutil.StripCarriageReturns(htmlutil.GetText(source.Nodes[0])), nil
}

// loadCatalog fetches the problem list once per Parser. A failed fetch is not
// cached.
func (p *Parser) loadCatalog(ctx context.Context) ([]model.Problem, tagIndex, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.index != nil {
		return p.catalog, p.index, nil
	}

	if p.problems == nil {
		return nil, nil, fmt.Errorf("%w: parser has no problem source", cferr.ErrLookupFailure)
	}

	problemset, err := p.problems.ProblemsetProblems(ctx, api.ProblemsetProblemsParams{})
	if err != nil {
		p.tel.ReportWarning(report_parser_load_catalog, err)
		return nil, nil, err
	}
	if problemset == nil {
		return nil, nil, fmt.Errorf("%w: empty problemset.problems result", cferr.ErrLookupFailure)
	}

	p.catalog = problemset.Problems
	p.index = buildTagIndex(problemset.Problems)
	p.tel.ReportCount(report_parser_tag_index, int64(len(p.index)))
	return p.catalog, p.index, nil
}
