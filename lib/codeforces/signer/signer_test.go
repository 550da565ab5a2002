package signer

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"codeforces-client/internal/components/chrono"
	"codeforces-client/lib/codeforces/cferr"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Unix(1700000000, 0)

func newTestSigner(t testing.TB, nonce int) *Signer {
	s, err := New(Options{
		Credentials: &Credentials{Key: "K", Secret: "S"},
		Nonce:       nonce,
		Time:        chrono.NewFixedImpl(fixedTime),
	})
	require.NoError(t, err)
	return s
}

func sha512Hex(s string) string {
	digest := sha512.Sum512([]byte(s))
	return hex.EncodeToString(digest[:])
}

func TestUserInfoSignature(t *testing.T) {
	s := newTestSigner(t, 123456)

	req, err := s.Sign("user.info", Fields{
		"handles": List("tourist", "VadVergasov"),
	})
	require.NoError(t, err)

	canonical := "123456/user.info?apiKey=K&handles=tourist;VadVergasov&time=1700000000#S"
	expected := "123456" + sha512Hex(canonical)

	require.Equal(t, expected, req.Signature)
	require.Equal(t, "https://codeforces.com/api/user.info", req.Url)
	require.Equal(t, Params{
		{Key: "apiKey", Value: "K"},
		{Key: "handles", Value: "tourist;VadVergasov"},
		{Key: "time", Value: "1700000000"},
		{Key: "apiSig", Value: expected},
	}, req.Params)

	copied := append(Params{}, req.Params[:len(req.Params)-1]...)
	require.Equal(t, canonical, CanonicalString(123456, "user.info", copied, "S"))
}

func TestSignDeterministic(t *testing.T) {
	s := newTestSigner(t, 424242)
	fields := Fields{
		"contestId": Int(566),
		"from":      Int(1),
		"count":     Int(10),
	}

	first, err := s.Sign("contest.standings", fields)
	require.NoError(t, err)
	second, err := s.Sign("contest.standings", fields)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSignOrderIndependent(t *testing.T) {
	s := newTestSigner(t, 424242)

	// maps have no order, build the same field set many times to shuffle insertion
	var signatures []string
	for i := 0; i < 16; i++ {
		fields := Fields{}
		keys := []string{"handle", "from", "count", "contestId", "asManager"}
		for j := range keys {
			k := keys[(i+j)%len(keys)]
			fields[k] = String(k + "-value")
		}
		req, err := s.Sign("contest.status", fields)
		require.NoError(t, err)
		signatures = append(signatures, req.Signature)
	}
	for _, sig := range signatures {
		require.Equal(t, signatures[0], sig)
	}
}

func TestSignSortedByteWise(t *testing.T) {
	s := newTestSigner(t, 111111)

	req, err := s.Sign("m", Fields{
		"b":  String("1"),
		"B":  String("2"),
		"a":  String("3"),
		"aa": String("4"),
	})
	require.NoError(t, err)

	var keys []string
	for _, p := range req.Params {
		keys = append(keys, p.Key)
	}
	require.Equal(t, []string{"B", "a", "aa", "apiKey", "b", "time", "apiSig"}, keys)
}

func TestNonceChangesSignature(t *testing.T) {
	fields := Fields{"handle": String("tourist")}

	a, err := newTestSigner(t, 123456).Sign("user.rating", fields)
	require.NoError(t, err)
	b, err := newTestSigner(t, 654321).Sign("user.rating", fields)
	require.NoError(t, err)

	require.NotEqual(t, a.Signature, b.Signature)
	require.Equal(t, "123456", a.Signature[:6])
	require.Equal(t, "654321", b.Signature[:6])
	// 6 digit prefix + 128 hex digits of sha512
	require.Len(t, a.Signature, 6+128)
}

func TestInvalidNonce(t *testing.T) {
	cases := []int{-1, 1, 99999, 1000000, 12345678}
	for _, nonce := range cases {
		t.Run(fmt.Sprint(nonce), func(t *testing.T) {
			_, err := New(Options{
				Credentials: &Credentials{Key: "K", Secret: "S"},
				Nonce:       nonce,
			})
			require.ErrorIs(t, err, cferr.ErrInvalidArgument)

			s := newTestSigner(t, 0)
			require.ErrorIs(t, s.SetNonce(nonce), cferr.ErrInvalidArgument)
		})
	}

	for _, nonce := range []int{MinNonce, MaxNonce} {
		_, err := New(Options{Nonce: nonce})
		require.NoError(t, err)
	}
}

func TestFreshNonce(t *testing.T) {
	drawn := []int{100001, 200002}
	s, err := New(Options{
		Credentials: &Credentials{Key: "K", Secret: "S"},
		Time:        chrono.NewFixedImpl(fixedTime),
		Random: func() (int, error) {
			n := drawn[0]
			drawn = drawn[1:]
			return n, nil
		},
	})
	require.NoError(t, err)

	first, err := s.Sign("user.info", Fields{"handles": List("tourist")})
	require.NoError(t, err)
	require.Equal(t, 100001, s.Nonce())
	second, err := s.Sign("user.info", Fields{"handles": List("tourist")})
	require.NoError(t, err)
	require.Equal(t, 200002, s.Nonce())

	require.Equal(t, "100001", first.Signature[:6])
	require.Equal(t, "200002", second.Signature[:6])
}

func TestFreshNonceErrors(t *testing.T) {
	sourceErr := errors.New("entropy exhausted")
	s, err := New(Options{
		Credentials: &Credentials{Key: "K", Secret: "S"},
		Random:      func() (int, error) { return 0, sourceErr },
	})
	require.NoError(t, err)
	_, err = s.Sign("user.info", nil)
	require.ErrorIs(t, err, sourceErr)

	s, err = New(Options{
		Credentials: &Credentials{Key: "K", Secret: "S"},
		Random:      func() (int, error) { return 42, nil },
	})
	require.NoError(t, err)
	_, err = s.Sign("user.info", nil)
	require.ErrorIs(t, err, cferr.ErrInvalidArgument)
}

func TestRandomNonceInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		n, err := RandomNonce()
		require.NoError(t, err)
		require.NoError(t, ValidateNonce(n))
	}
}

func TestAnonymous(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)
	require.True(t, s.Anonymous())

	req, err := s.Sign("contest.list", Fields{
		"gym": Bool(false),
	})
	require.NoError(t, err)
	require.Empty(t, req.Signature)
	require.Equal(t, Params{{Key: "gym", Value: "false"}}, req.Params)

	_, ok := req.Params.Get(ParamApiKey)
	require.False(t, ok)
	_, ok = req.Params.Get(ParamTime)
	require.False(t, ok)
}

func TestIncompleteCredentials(t *testing.T) {
	_, err := New(Options{Credentials: &Credentials{Secret: "S"}})
	require.ErrorIs(t, err, cferr.ErrMissingArgument)
	_, err = New(Options{Credentials: &Credentials{Key: "K"}})
	require.ErrorIs(t, err, cferr.ErrMissingArgument)
}

func TestBaseUrl(t *testing.T) {
	s, err := New(Options{BaseUrl: "http://127.0.0.1:8080/api"})
	require.NoError(t, err)

	req, err := s.Sign("user.info", nil)
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080/api/user.info", req.Url)

	_, err = s.Sign("", nil)
	require.ErrorIs(t, err, cferr.ErrMissingArgument)
}

func TestDoesNotMutateFields(t *testing.T) {
	s := newTestSigner(t, 123456)
	fields := Fields{"handle": String("tourist")}
	_, err := s.Sign("user.rating", fields)
	require.NoError(t, err)
	require.Equal(t, Fields{"handle": String("tourist")}, fields)
}

func TestParamsEncode(t *testing.T) {
	params := Params{
		{Key: "handles", Value: "tourist;VadVergasov"},
		{Key: "q", Value: "a b&c"},
	}
	require.Equal(t, "handles=tourist;VadVergasov&q=a b&c", params.Raw())
	require.Equal(t, "handles=tourist%3BVadVergasov&q=a+b%26c", params.Encode())
	value, ok := params.Get("q")
	require.True(t, ok)
	require.Equal(t, "a b&c", value)
	_, ok = params.Get("missing")
	require.False(t, ok)
}

func TestValueRendering(t *testing.T) {
	require.Equal(t, "a;b;c", List("a", "b", "c").String())
	require.Equal(t, "", List().String())
	require.Equal(t, "a", List("a").String())
	require.Equal(t, "true", Bool(true).String())
	require.Equal(t, "-3", Int(-3).String())
}
