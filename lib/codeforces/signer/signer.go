// Package signer builds the signed parameter sets the codeforces API expects.
//
// A signed request carries apiKey, time and apiSig next to the caller's fields, where
//
//	apiSig = nonce + hex(sha512("<nonce>/<method>?<sorted k=v pairs>#<secret>"))
package signer

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"codeforces-client/internal/components/chrono"
	"codeforces-client/lib/codeforces/cferr"

	"github.com/mazen160/go-random"
)

const (
	DefaultBaseUrl = "https://codeforces.com/api/"

	MinNonce = 100000
	MaxNonce = 999999

	ParamApiKey = "apiKey"
	ParamTime   = "time"
	ParamApiSig = "apiSig"
)

// Credentials are the api key and secret issued by codeforces. They are secrets: do
// not log or print them.
type Credentials struct {
	Key    string
	Secret string
}

// NonceSource draws a fresh nonce in [MinNonce, MaxNonce].
type NonceSource func() (int, error)

// RandomNonce is the default NonceSource, backed by crypto/rand.
func RandomNonce() (int, error) {
	return random.IntRange(MinNonce, MaxNonce)
}

func ValidateNonce(nonce int) error {
	if nonce < MinNonce || nonce > MaxNonce {
		return fmt.Errorf("%w: nonce %d is not a 6-digit number", cferr.ErrInvalidArgument, nonce)
	}
	return nil
}

type Options struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// nil means anonymous mode, requests will not be signed
	Credentials *Credentials
	// a non-zero nonce is pinned and reused for every request, zero means a fresh
	// nonce is drawn for every request
	Nonce int
	// defaults to chrono.StandardImpl
	Time chrono.API
	// defaults to RandomNonce
	Random NonceSource
}

// Signer is not safe for concurrent use when the nonce is not pinned.
type Signer struct {
	baseUrl     string
	credentials *Credentials
	nonce       int
	pinned      bool
	time        chrono.API
	random      NonceSource
}

func New(opts Options) (*Signer, error) {
	s := &Signer{
		baseUrl:     opts.BaseUrl,
		credentials: opts.Credentials,
		time:        opts.Time,
		random:      opts.Random,
	}
	if s.baseUrl == "" {
		s.baseUrl = DefaultBaseUrl
	}
	if !strings.HasSuffix(s.baseUrl, "/") {
		s.baseUrl += "/"
	}
	if s.time == nil {
		s.time = chrono.NewStandardImpl()
	}
	if s.random == nil {
		s.random = RandomNonce
	}

	if s.credentials != nil {
		if s.credentials.Key == "" {
			return nil, fmt.Errorf("%w: api key is required when credentials are given", cferr.ErrMissingArgument)
		}
		if s.credentials.Secret == "" {
			return nil, fmt.Errorf("%w: api secret is required when credentials are given", cferr.ErrMissingArgument)
		}
	}

	if opts.Nonce != 0 {
		err := s.SetNonce(opts.Nonce)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Signer) Anonymous() bool {
	return s.credentials == nil
}

func (s *Signer) BaseUrl() string {
	return s.baseUrl
}

// SetNonce pins nonce for all following requests.
func (s *Signer) SetNonce(nonce int) error {
	err := ValidateNonce(nonce)
	if err != nil {
		return err
	}
	s.nonce = nonce
	s.pinned = true
	return nil
}

// Nonce returns the nonce used by the last signed request, or the pinned one.
func (s *Signer) Nonce() int {
	return s.nonce
}

func (s *Signer) nextNonce() (int, error) {
	if s.pinned {
		return s.nonce, nil
	}
	nonce, err := s.random()
	if err != nil {
		return 0, fmt.Errorf("draw nonce: %w", err)
	}
	err = ValidateNonce(nonce)
	if err != nil {
		return 0, err
	}
	s.nonce = nonce
	return nonce, nil
}

// Request is the descriptor of a single API call. Url has no query string, Params
// travel as the query string or the form body depending on the transport.
type Request struct {
	Method string
	Url    string
	Params Params
	// empty for anonymous requests
	Signature string
}

// CanonicalString is the exact string hashed for the signature. params must already
// be sorted and must not contain apiSig.
func CanonicalString(nonce int, method string, params Params, secret string) string {
	return fmt.Sprintf("%d/%s?%s#%s", nonce, method, params.Raw(), secret)
}

// Signature is the apiSig value for a canonical string.
func Signature(nonce int, canonical string) string {
	digest := sha512.Sum512([]byte(canonical))
	return strconv.Itoa(nonce) + hex.EncodeToString(digest[:])
}

// Sign produces the request for method. fields is not modified.
func (s *Signer) Sign(method string, fields Fields) (Request, error) {
	if method == "" {
		return Request{}, fmt.Errorf("%w: method name is required", cferr.ErrMissingArgument)
	}

	req := Request{
		Method: method,
		Url:    s.baseUrl + method,
	}

	if s.Anonymous() {
		req.Params = sortedParams(fields)
		return req, nil
	}

	nonce, err := s.nextNonce()
	if err != nil {
		return Request{}, err
	}

	signed := make(Fields, len(fields)+2)
	for k, v := range fields {
		signed[k] = v
	}
	signed[ParamApiKey] = String(s.credentials.Key)
	signed[ParamTime] = String(strconv.FormatInt(s.time.Now().Unix(), 10))

	params := sortedParams(signed)
	req.Signature = Signature(nonce, CanonicalString(nonce, method, params, s.credentials.Secret))
	req.Params = append(params, Param{Key: ParamApiSig, Value: req.Signature})
	return req, nil
}
