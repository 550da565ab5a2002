package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"codeforces-client/internal/components/chrono"
	"codeforces-client/internal/components/telemetry"
	"codeforces-client/lib/codeforces/cferr"
	"codeforces-client/lib/codeforces/signer"

	"github.com/stretchr/testify/require"
)

//go:embed testdata
var fixtures embed.FS

func fixture(t testing.TB, name string) []byte {
	data, err := fixtures.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

var fixedTime = time.Unix(1700000000, 0)

// countingTransport answers every request with the same response.
type countingTransport struct {
	lock     sync.Mutex
	requests []signer.Request
	methods  []Method
	response Response
	err      error
}

func (f *countingTransport) Do(_ context.Context, method Method, req signer.Request) (Response, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.requests = append(f.requests, req)
	f.methods = append(f.methods, method)
	return f.response, f.err
}

func (f *countingTransport) calls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.requests)
}

func okTransport(body string) *countingTransport {
	return &countingTransport{response: Response{
		StatusCode: 200,
		Status:     "200 OK",
		Body:       []byte(body),
	}}
}

func newTestClient(t testing.TB, transport Transport, credentials *signer.Credentials) *Client {
	s, err := signer.New(signer.Options{
		Credentials: credentials,
		Nonce:       123456,
		Time:        chrono.NewFixedImpl(fixedTime),
	})
	require.NoError(t, err)
	return New(s, transport, MethodGet, &telemetry.Recorder{})
}

var testCredentials = &signer.Credentials{Key: "K", Secret: "S"}

func handles(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("user%d", i)
	}
	return out
}

func TestAuthRequired(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		call func(c *Client) error
	}{
		{"user.friends", func(c *Client) error {
			_, err := c.UserFriends(ctx, false)
			return err
		}},
		{"contest.hacks", func(c *Client) error {
			_, err := c.ContestHacks(ctx, 566, true)
			return err
		}},
		{"contest.standings", func(c *Client) error {
			_, err := c.ContestStandings(ctx, ContestStandingsParams{ContestId: 566, AsManager: true})
			return err
		}},
		{"contest.status", func(c *Client) error {
			_, err := c.ContestStatus(ctx, ContestStatusParams{ContestId: 566, AsManager: true})
			return err
		}},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			transport := okTransport(`{"status":"OK","result":[]}`)
			client := newTestClient(t, transport, nil)
			require.True(t, client.Anonymous())

			err := test.call(client)
			require.ErrorIs(t, err, cferr.ErrAuthRequired)
			require.Equal(t, 0, transport.calls())
		})
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name     string
		call     func(c *Client) error
		expected error
	}{
		{"10001 handles", func(c *Client) error {
			_, err := c.UserInfo(ctx, handles(10001))
			return err
		}, cferr.ErrOverflow},
		{"no handles", func(c *Client) error {
			_, err := c.UserInfo(ctx, nil)
			return err
		}, cferr.ErrMissingArgument},
		{"empty handle in list", func(c *Client) error {
			_, err := c.UserInfo(ctx, []string{"tourist", ""})
			return err
		}, cferr.ErrMissingArgument},
		{"standings 10001 handles", func(c *Client) error {
			_, err := c.ContestStandings(ctx, ContestStandingsParams{ContestId: 1, Handles: handles(10001)})
			return err
		}, cferr.ErrOverflow},
		{"standings negative from", func(c *Client) error {
			_, err := c.ContestStandings(ctx, ContestStandingsParams{ContestId: 1, From: -1})
			return err
		}, cferr.ErrInvalidArgument},
		{"standings negative room", func(c *Client) error {
			_, err := c.ContestStandings(ctx, ContestStandingsParams{ContestId: 1, Room: -2})
			return err
		}, cferr.ErrInvalidArgument},
		{"standings no contest", func(c *Client) error {
			_, err := c.ContestStandings(ctx, ContestStandingsParams{})
			return err
		}, cferr.ErrMissingArgument},
		{"empty rating handle", func(c *Client) error {
			_, err := c.UserRating(ctx, "")
			return err
		}, cferr.ErrMissingArgument},
		{"empty blog handle", func(c *Client) error {
			_, err := c.UserBlogEntries(ctx, "")
			return err
		}, cferr.ErrMissingArgument},
		{"empty status handle", func(c *Client) error {
			_, err := c.UserStatus(ctx, UserStatusParams{})
			return err
		}, cferr.ErrMissingArgument},
		{"negative status count", func(c *Client) error {
			_, err := c.UserStatus(ctx, UserStatusParams{Handle: "tourist", Count: -1})
			return err
		}, cferr.ErrInvalidArgument},
		{"recent status over cap", func(c *Client) error {
			_, err := c.ProblemsetRecentStatus(ctx, ProblemsetRecentStatusParams{Count: 1001})
			return err
		}, cferr.ErrOverflow},
		{"recent status missing count", func(c *Client) error {
			_, err := c.ProblemsetRecentStatus(ctx, ProblemsetRecentStatusParams{})
			return err
		}, cferr.ErrMissingArgument},
		{"recent actions over cap", func(c *Client) error {
			_, err := c.RecentActions(ctx, 101)
			return err
		}, cferr.ErrOverflow},
		{"recent actions negative", func(c *Client) error {
			_, err := c.RecentActions(ctx, -5)
			return err
		}, cferr.ErrInvalidArgument},
		{"blog entry id", func(c *Client) error {
			_, err := c.BlogEntryView(ctx, 0)
			return err
		}, cferr.ErrMissingArgument},
		{"comments id", func(c *Client) error {
			_, err := c.BlogEntryComments(ctx, -1)
			return err
		}, cferr.ErrMissingArgument},
		{"hacks id", func(c *Client) error {
			_, err := c.ContestHacks(ctx, 0, false)
			return err
		}, cferr.ErrMissingArgument},
		{"rating changes id", func(c *Client) error {
			_, err := c.ContestRatingChanges(ctx, 0)
			return err
		}, cferr.ErrMissingArgument},
		{"contest status id", func(c *Client) error {
			_, err := c.ContestStatus(ctx, ContestStatusParams{})
			return err
		}, cferr.ErrMissingArgument},
		{"rated list contest", func(c *Client) error {
			_, err := c.UserRatedList(ctx, UserRatedListParams{ContestId: -1})
			return err
		}, cferr.ErrInvalidArgument},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			transport := okTransport(`{"status":"OK","result":[]}`)
			client := newTestClient(t, transport, testCredentials)

			err := test.call(client)
			require.ErrorIs(t, err, test.expected)
			require.ErrorIs(t, err, cferr.ErrInvalidArgument)
			require.Equal(t, 0, transport.calls())
		})
	}
}

func TestHandleLimitBoundary(t *testing.T) {
	transport := okTransport(`{"status":"OK","result":[]}`)
	client := newTestClient(t, transport, testCredentials)

	users, err := client.UserInfo(context.Background(), handles(MaxHandles))
	require.NoError(t, err)
	require.Empty(t, users)
	require.Equal(t, 1, transport.calls())

	value, ok := transport.requests[0].Params.Get("handles")
	require.True(t, ok)
	require.Equal(t, MaxHandles, len(strings.Split(value, ";")))
}

func TestRemoteRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"FAILED","comment":"contestId not found"}`))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{
		BaseUrl:   server.URL + "/api/",
		Telemetry: &telemetry.Recorder{},
	})
	require.NoError(t, err)

	ctx := context.Background()
	cases := []struct {
		name string
		call func() error
	}{
		{"contest.standings", func() error {
			_, err := client.ContestStandings(ctx, ContestStandingsParams{ContestId: 99999999})
			return err
		}},
		{"contest.list", func() error {
			_, err := client.ContestList(ctx, false)
			return err
		}},
		{"user.info", func() error {
			_, err := client.UserInfo(ctx, []string{"tourist"})
			return err
		}},
		{"problemset.problems", func() error {
			_, err := client.ProblemsetProblems(ctx, ProblemsetProblemsParams{})
			return err
		}},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			err := test.call()
			require.ErrorIs(t, err, cferr.ErrRemoteRejected)

			var rejected *cferr.RemoteRejectedError
			require.True(t, errors.As(err, &rejected))
			require.Equal(t, "FAILED", rejected.Status)
			require.Equal(t, "contestId not found", rejected.Comment)
			require.Equal(t, test.name, rejected.Method)
		})
	}
}

func TestUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "text/html")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`<html><body>Codeforces is temporarily unavailable</body></html>`))
	}))
	defer server.Close()

	tel := &telemetry.Recorder{}
	client, err := NewClient(ClientOptions{
		BaseUrl:   server.URL + "/api",
		Telemetry: tel,
	})
	require.NoError(t, err)

	_, err = client.ContestList(context.Background(), false)
	require.ErrorIs(t, err, cferr.ErrUnavailable)
	require.NotErrorIs(t, err, cferr.ErrMalformedResponse)

	var unavailable *cferr.UnavailableError
	require.True(t, errors.As(err, &unavailable))
	require.Equal(t, http.StatusServiceUnavailable, unavailable.StatusCode)

	require.NotEmpty(t, tel.Reports("warning"))
}

func TestServerErrorEnvelope(t *testing.T) {
	table := []struct {
		status   int
		rejected bool
	}{
		{status: http.StatusBadRequest, rejected: true},
		{status: http.StatusInternalServerError},
		{status: http.StatusServiceUnavailable},
	}
	for _, row := range table {
		t.Run(http.StatusText(row.status), func(t *testing.T) {
			transport := &countingTransport{response: Response{
				StatusCode: row.status,
				Status:     fmt.Sprintf("%d %s", row.status, http.StatusText(row.status)),
				Body:       []byte(`{"status":"FAILED","comment":"Call limit exceeded"}`),
			}}
			client := newTestClient(t, transport, nil)

			_, err := client.ContestList(context.Background(), false)
			if row.rejected {
				require.ErrorIs(t, err, cferr.ErrRemoteRejected)
				return
			}
			require.ErrorIs(t, err, cferr.ErrUnavailable)
			require.NotErrorIs(t, err, cferr.ErrRemoteRejected)

			var unavailable *cferr.UnavailableError
			require.True(t, errors.As(err, &unavailable))
			require.Equal(t, row.status, unavailable.StatusCode)
		})
	}
}

func TestUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	client, err := NewClient(ClientOptions{
		BaseUrl:   base + "/api/",
		Timeout:   time.Second,
		Telemetry: &telemetry.Recorder{},
	})
	require.NoError(t, err)

	_, err = client.ContestList(context.Background(), false)
	require.ErrorIs(t, err, cferr.ErrUnavailable)
}

func TestMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"truncated", `{"status":"OK","result":[{"handle":"tour`},
		{"no status", `{"result":[]}`},
		{"result shape", `{"status":"OK","result":{"handle":"tourist"}}`},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			transport := okTransport(test.body)
			client := newTestClient(t, transport, nil)

			_, err := client.UserInfo(context.Background(), []string{"tourist"})
			require.ErrorIs(t, err, cferr.ErrMalformedResponse)
			require.Contains(t, err.Error(), "fewer items")
		})
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	cause := errors.New("connection reset by peer")
	transport := &countingTransport{err: &cferr.UnavailableError{Err: cause}}
	client := newTestClient(t, transport, nil)

	_, err := client.ContestList(context.Background(), true)
	require.ErrorIs(t, err, cferr.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.Equal(t, 1, transport.calls())
}

func TestUserInfo(t *testing.T) {
	transport := okTransport(string(fixture(t, "user_info.json")))
	client := newTestClient(t, transport, testCredentials)

	users, err := client.UserInfo(context.Background(), []string{"tourist", "VadVergasov"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "tourist", users[0].Handle)
	require.Equal(t, "VadVergasov", users[1].Handle)
	require.Equal(t, 1448, *users[1].Rating)
	require.Nil(t, users[1].FirstName)

	req := transport.requests[0]
	require.Equal(t, "https://codeforces.com/api/user.info", req.Url)
	canonical := "123456/user.info?apiKey=K&handles=tourist;VadVergasov&time=1700000000#S"
	require.Equal(t, signer.Signature(123456, canonical), req.Signature)
}

func TestContestStandings(t *testing.T) {
	transport := okTransport(string(fixture(t, "contest_standings.json")))
	client := newTestClient(t, transport, nil)

	standings, err := client.ContestStandings(context.Background(), ContestStandingsParams{
		ContestId: 566,
		From:      1,
		Count:     5,
		Handles:   []string{"rng_58"},
	})
	require.NoError(t, err)
	require.Equal(t, 566, standings.Contest.Id)
	require.Len(t, standings.Problems, 2)
	require.Len(t, standings.Rows, 1)
	require.Equal(t, []string{"rng_58"}, standings.Rows[0].Party.Handles())

	require.Equal(t, signer.Params{
		{Key: "contestId", Value: "566"},
		{Key: "count", Value: "5"},
		{Key: "from", Value: "1"},
		{Key: "handles", Value: "rng_58"},
		{Key: "showUnofficial", Value: "false"},
	}, transport.requests[0].Params)
}

func TestContestHacks(t *testing.T) {
	transport := okTransport(string(fixture(t, "contest_hacks.json")))
	client := newTestClient(t, transport, testCredentials)

	hacks, err := client.ContestHacks(context.Background(), 1311, true)
	require.NoError(t, err)
	require.Len(t, hacks, 1)
	require.Equal(t, 615666, hacks[0].Id)
	require.Equal(t, "Invalid input", hacks[0].JudgeProtocol["verdict"])

	value, ok := transport.requests[0].Params.Get("asManager")
	require.True(t, ok)
	require.Equal(t, "true", value)
}

func TestOptionalParamsOmitted(t *testing.T) {
	transport := okTransport(`{"status":"OK","result":[]}`)
	client := newTestClient(t, transport, nil)
	ctx := context.Background()

	_, err := client.ContestStatus(ctx, ContestStatusParams{ContestId: 566})
	require.NoError(t, err)
	require.Equal(t, signer.Params{{Key: "contestId", Value: "566"}}, transport.requests[0].Params)

	_, err = client.ProblemsetProblems(ctx, ProblemsetProblemsParams{})
	require.Error(t, err) // an empty array is not a problemset
	require.Empty(t, transport.requests[1].Params)

	_, err = client.UserRatedList(ctx, UserRatedListParams{ActiveOnly: true})
	require.NoError(t, err)
	require.Equal(t, signer.Params{
		{Key: "activeOnly", Value: "true"},
		{Key: "includeRetired", Value: "false"},
	}, transport.requests[2].Params)
}

func TestUserFriends(t *testing.T) {
	transport := okTransport(`{"status":"OK","result":["tourist","Petr"]}`)
	client := newTestClient(t, transport, testCredentials)

	friends, err := client.UserFriends(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, []string{"tourist", "Petr"}, friends)

	transport = okTransport(`{"status":"OK","result":["tourist",1]}`)
	client = newTestClient(t, transport, testCredentials)
	_, err = client.UserFriends(context.Background(), true)
	require.ErrorIs(t, err, cferr.ErrTypeMismatch)
}

func TestProblemsetProblems(t *testing.T) {
	transport := okTransport(`{"status":"OK","result":{
		"problems":[{"contestId":4,"index":"A","name":"Watermelon","type":"PROGRAMMING","rating":800,"tags":["brute force","math"]}],
		"problemStatistics":[{"contestId":4,"index":"A","solvedCount":400000}]
	}}`)
	client := newTestClient(t, transport, nil)

	problemset, err := client.ProblemsetProblems(context.Background(), ProblemsetProblemsParams{
		Tags: []string{"math", "brute force"},
	})
	require.NoError(t, err)
	require.Equal(t, "Watermelon", problemset.Problems[0].Name)
	require.Equal(t, 400000, problemset.ProblemStatistics[0].SolvedCount)

	value, _ := transport.requests[0].Params.Get("tags")
	require.Equal(t, "math;brute force", value)
}

func TestTransportMethods(t *testing.T) {
	type seen struct {
		method   string
		rawQuery string
		form     url.Values
		ctype    string
	}
	var (
		lock sync.Mutex
		last seen
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		lock.Lock()
		last = seen{
			method:   r.Method,
			rawQuery: r.URL.RawQuery,
			form:     r.PostForm,
			ctype:    r.Header.Get("content-type"),
		}
		lock.Unlock()
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"status":"OK","result":[]}`))
	}))
	defer server.Close()

	clientFor := func(method Method) *Client {
		client, err := NewClient(ClientOptions{
			BaseUrl:     server.URL + "/api/",
			Credentials: testCredentials,
			Nonce:       123456,
			Method:      method,
			Time:        chrono.NewFixedImpl(fixedTime),
			Telemetry:   &telemetry.Recorder{},
		})
		require.NoError(t, err)
		return client
	}
	sig := signer.Signature(123456, "123456/user.info?apiKey=K&handles=tourist;VadVergasov&time=1700000000#S")

	_, err := clientFor(MethodGet).UserInfo(context.Background(), []string{"tourist", "VadVergasov"})
	require.NoError(t, err)
	lock.Lock()
	require.Equal(t, "GET", last.method)
	require.Equal(t,
		"apiKey=K&handles=tourist%3BVadVergasov&time=1700000000&apiSig="+sig,
		last.rawQuery,
	)
	lock.Unlock()

	_, err = clientFor(MethodPost).UserInfo(context.Background(), []string{"tourist", "VadVergasov"})
	require.NoError(t, err)
	lock.Lock()
	require.Equal(t, "POST", last.method)
	require.Empty(t, last.rawQuery)
	require.Equal(t, "application/x-www-form-urlencoded", last.ctype)
	require.Equal(t, "tourist;VadVergasov", last.form.Get("handles"))
	require.Equal(t, sig, last.form.Get("apiSig"))
	lock.Unlock()
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		input    string
		expected Method
		fails    bool
	}{
		{input: "", expected: MethodGet},
		{input: "get", expected: MethodGet},
		{input: "POST", expected: MethodPost},
		{input: "Post", expected: MethodPost},
		{input: "put", fails: true},
	}
	for _, test := range cases {
		method, err := ParseMethod(test.input)
		if test.fails {
			require.ErrorIs(t, err, cferr.ErrInvalidArgument)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, test.expected, method)
	}
	require.Equal(t, "POST", MethodPost.String())
}
