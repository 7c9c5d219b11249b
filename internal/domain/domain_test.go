package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody_JSON(t *testing.T) {
	b := ParseBody([]byte(`{"message":"not found","code":404}`))

	require.True(t, b.JSON)
	assert.Equal(t, "not found", b.Field("message", "error"))
	assert.Contains(t, b.Pretty(), `"code": 404`)
}

func TestParseBody_RawTextIsNotAnError(t *testing.T) {
	b := ParseBody([]byte("<html>Bad Gateway</html>"))

	assert.False(t, b.JSON)
	assert.Nil(t, b.Value)
	assert.Equal(t, "<html>Bad Gateway</html>", b.Pretty())
	assert.Empty(t, b.Field("message"))
}

func TestParseBody_Empty(t *testing.T) {
	b := ParseBody(nil)
	assert.False(t, b.JSON)
	assert.Equal(t, "", b.Pretty())
}

func TestBody_Object(t *testing.T) {
	b := ParseBody([]byte(`{"taste_profile":{"summary":"pop fan"}}`))

	inner, ok := b.Object("taste_profile")
	require.True(t, ok)
	assert.Equal(t, "pop fan", inner["summary"])

	_, ok = b.Object("missing")
	assert.False(t, ok)
}

func TestMatchResult_Defaults(t *testing.T) {
	m := MatchResult{UserID: "u1"}

	assert.Equal(t, "u1", m.Name())
	assert.Equal(t, 0, m.ArtistCount())
	assert.Equal(t, 0, m.GenreCount())
	assert.Equal(t, 0, m.TrackCount())

	five := 5
	m.DisplayName = "Alex"
	m.SharedArtistCount = &five
	assert.Equal(t, "Alex", m.Name())
	assert.Equal(t, 5, m.ArtistCount())
}

func TestHTTPError_Message(t *testing.T) {
	err := &HTTPError{StatusCode: 404, Body: ParseBody([]byte(`{"message":"not found"}`))}
	assert.Equal(t, "HTTP 404: not found", err.Error())

	err = &HTTPError{StatusCode: 502, Body: ParseBody([]byte("upstream timeout\n"))}
	assert.Equal(t, "HTTP 502: upstream timeout", err.Error())

	err = &HTTPError{StatusCode: 500, Body: ParseBody([]byte(`{"detail":"x"}`))}
	assert.Equal(t, "HTTP 500", err.Error())
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&NetworkError{Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "network error: connection refused", err.Error())
}

func TestCoerceLimit(t *testing.T) {
	cases := map[string]int{
		"":      10,
		"  ":    10,
		"abc":   10,
		"0":     10,
		"-3":    10,
		"25":    25,
		" 7 ":   7,
		"5.9":   5,
		"1e309": 10,
		"NaN":   10,
		"nan":   10,
		"Inf":   10,
	}
	for input, want := range cases {
		assert.Equal(t, want, CoerceLimit(input), "input %q", input)
	}
}
