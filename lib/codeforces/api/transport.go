package api

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"strings"
	"time"

	"codeforces-client/internal/components/telemetry"
	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/signer"
	"codeforces-client/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Method selects how parameters travel: the query string or a form body.
type Method int

const (
	MethodGet Method = iota
	MethodPost
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts "get" or "post" in any case.
func ParseMethod(name string) (Method, error) {
	switch strings.ToUpper(name) {
	case "GET", "":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	}
	return 0, fmt.Errorf("%w: unknown http method %q", cferr.ErrInvalidArgument, name)
}

type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Transport sends a single request. Implementations return a *cferr.UnavailableError
// when no response arrives, any response that does arrive is returned as is.
//
// note: fault injection point
type Transport interface {
	Do(ctx context.Context, method Method, req signer.Request) (Response, error)
}

type RestyTransportOptions struct {
	// defaults to 30 seconds
	Timeout time.Duration
	// optional, waited on before every request
	Limiter *rate.Limiter
	// optional, receives a dump of every exchange
	Output restyutil.InstrumentOutput
	// optional, enables an otel span per request
	TracerName string
}

// RestyTransport reuses one resty client, and so one connection pool and cookie jar,
// for all requests.
type RestyTransport struct {
	http *resty.Client
}

func NewRestyTransport(tel telemetry.API, opts RestyTransportOptions) (RestyTransport, error) {
	tel = telemetry.OrDefault(tel)

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return RestyTransport{}, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("user-agent", "codeforces-client/1 (+https://codeforces.com/apiHelp)")

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
	if opts.TracerName != "" {
		telemetry.InstrumentRestyTracing(client, opts.TracerName)
	}
	if opts.Output != nil {
		restyutil.InstrumentClient(client, opts.Output)
	}

	return RestyTransport{http: client}, nil
}

func (t RestyTransport) Do(ctx context.Context, method Method, req signer.Request) (Response, error) {
	var (
		res *resty.Response
		err error
	)

	// the query is appended by hand since resty would re-encode it through url.Values,
	// which loses the signed order
	switch method {
	case MethodGet:
		url := req.Url
		if len(req.Params) > 0 {
			url += "?" + req.Params.Encode()
		}
		res, err = t.http.R().
			SetContext(ctx).
			Get(url)
	case MethodPost:
		res, err = t.http.R().
			SetContext(ctx).
			SetHeader("content-type", "application/x-www-form-urlencoded").
			SetBody(req.Params.Encode()).
			Post(req.Url)
	default:
		return Response{}, fmt.Errorf("%w: unsupported transport method %s", cferr.ErrInvalidArgument, method)
	}
	if err != nil {
		return Response{}, &cferr.UnavailableError{Err: err}
	}

	return Response{
		StatusCode: res.StatusCode(),
		Status:     res.Status(),
		Body:       res.Body(),
	}, nil
}
