// Package api is a typed client for the codeforces API (https://codeforces.com/apiHelp).
//
// Every remote method maps to one Client method. Arguments are validated before any
// request is made, results are mapped into the entities of package model.
package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeforces-client/internal/components/assert"
	"codeforces-client/internal/components/chrono"
	"codeforces-client/internal/components/telemetry"
	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/model"
	"codeforces-client/lib/codeforces/signer"
	"codeforces-client/lib/restyutil"

	"github.com/bytedance/sonic"
	"golang.org/x/time/rate"
)

const (
	report_client_sign   = "client.sign"
	report_client_send   = "client.send"
	report_client_reject = "client.reject"
	report_client_decode = "client.decode"
	report_client_map    = "client.map"
)

const statusOk = "OK"

var decoder = sonic.Config{UseNumber: true}.Froze()

type Client struct {
	signer    *signer.Signer
	transport Transport
	method    Method
	tel       telemetry.API
}

// New creates a client that signs with s and sends with transport.
func New(s *signer.Signer, transport Transport, method Method, tel telemetry.API) *Client {
	assert.NotNil(s)
	assert.NotNil(transport)

	return &Client{
		signer:    s,
		transport: transport,
		method:    method,
		tel:       telemetry.NewScopedAPI("codeforces_api", telemetry.OrDefault(tel)),
	}
}

type ClientOptions struct {
	// defaults to signer.DefaultBaseUrl
	BaseUrl string
	// nil means anonymous mode
	Credentials *signer.Credentials
	// pins the nonce when non-zero
	Nonce  int
	Method Method

	Timeout    time.Duration
	Limiter    *rate.Limiter
	Output     restyutil.InstrumentOutput
	TracerName string

	Time      chrono.API
	Telemetry telemetry.API
}

// NewClient creates a client backed by a RestyTransport.
func NewClient(opts ClientOptions) (*Client, error) {
	s, err := signer.New(signer.Options{
		BaseUrl:     opts.BaseUrl,
		Credentials: opts.Credentials,
		Nonce:       opts.Nonce,
		Time:        opts.Time,
	})
	if err != nil {
		return nil, err
	}
	transport, err := NewRestyTransport(opts.Telemetry, RestyTransportOptions{
		Timeout:    opts.Timeout,
		Limiter:    opts.Limiter,
		Output:     opts.Output,
		TracerName: opts.TracerName,
	})
	if err != nil {
		return nil, err
	}
	return New(s, transport, opts.Method, opts.Telemetry), nil
}

func (c *Client) Anonymous() bool {
	return c.signer.Anonymous()
}

func (c *Client) requireAuth(method string) error {
	if c.signer.Anonymous() {
		return fmt.Errorf("%w: %s needs an api key and secret", cferr.ErrAuthRequired, method)
	}
	return nil
}

type envelope struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  any    `json:"result"`
}

// unwrap checks the envelope before the 4xx statuses, codeforces answers with 400
// and a FAILED envelope for most rejected calls. 5xx is always unavailable.
func unwrap(method string, res Response) (any, error) {
	if res.StatusCode >= 500 {
		return nil, &cferr.UnavailableError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
	}

	var env envelope
	decodeErr := decoder.Unmarshal(res.Body, &env)
	if decodeErr == nil && env.Status != "" {
		if env.Status != statusOk {
			return nil, &cferr.RemoteRejectedError{
				Method:  method,
				Status:  env.Status,
				Comment: env.Comment,
			}
		}
		return env.Result, nil
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &cferr.UnavailableError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
	}
	if decodeErr != nil {
		return nil, cferr.Malformed(method, decodeErr)
	}
	return nil, cferr.Malformed(method, errors.New("envelope has no status"))
}

func (c *Client) call(ctx context.Context, method string, fields signer.Fields) (any, error) {
	req, err := c.signer.Sign(method, fields)
	if err != nil {
		c.tel.ReportBroken(report_client_sign, method, err)
		return nil, err
	}

	res, err := c.transport.Do(ctx, c.method, req)
	if err != nil {
		c.tel.ReportWarning(report_client_send, method, err)
		return nil, err
	}

	result, err := unwrap(method, res)
	if err != nil {
		var rejected *cferr.RemoteRejectedError
		if errors.As(err, &rejected) {
			c.tel.ReportDebug(report_client_reject, method, rejected.Comment)
		} else {
			c.tel.ReportWarning(report_client_decode, method, err)
		}
		return nil, err
	}
	return result, nil
}

func callList[T any](
	ctx context.Context,
	c *Client,
	method string,
	fields signer.Fields,
	fn func(map[string]any) (*T, error),
) ([]T, error) {
	result, err := c.call(ctx, method, fields)
	if err != nil {
		return nil, err
	}
	raw, ok := result.([]any)
	if !ok {
		err := cferr.Malformed(method, fmt.Errorf("result is %T, expected array", result))
		c.tel.ReportBroken(report_client_map, method, err)
		return nil, err
	}
	out, err := model.MapList(method, raw, fn)
	if err != nil {
		c.tel.ReportBroken(report_client_map, method, err)
		return nil, err
	}
	return out, nil
}

func callObject[T any](
	ctx context.Context,
	c *Client,
	method string,
	fields signer.Fields,
	fn func(map[string]any) (*T, error),
) (*T, error) {
	result, err := c.call(ctx, method, fields)
	if err != nil {
		return nil, err
	}
	raw, ok := result.(map[string]any)
	if !ok {
		err := cferr.Malformed(method, fmt.Errorf("result is %T, expected object", result))
		c.tel.ReportBroken(report_client_map, method, err)
		return nil, err
	}
	out, err := fn(raw)
	if err != nil {
		c.tel.ReportBroken(report_client_map, method, err)
		return nil, err
	}
	return out, nil
}

func callStrings(ctx context.Context, c *Client, method string, fields signer.Fields) ([]string, error) {
	result, err := c.call(ctx, method, fields)
	if err != nil {
		return nil, err
	}
	raw, ok := result.([]any)
	if !ok {
		err := cferr.Malformed(method, fmt.Errorf("result is %T, expected array", result))
		c.tel.ReportBroken(report_client_map, method, err)
		return nil, err
	}
	out := make([]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			err := fmt.Errorf("%w: %s[%d] is %T, expected string", cferr.ErrTypeMismatch, method, i, e)
			c.tel.ReportBroken(report_client_map, method, err)
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
