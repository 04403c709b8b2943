//go:build !capped_noencoding

package capped

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"
)

func TestStringJSON(t *testing.T) {
	s := Must(NewString[size3]("hé"))
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"hé"`, string(b))

	var out String[size3]
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, s, out)

	err = json.Unmarshal([]byte(`"abcd"`), &out)
	require.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, "hé", out.String())

	// Escapes are resolved before the length is checked.
	require.NoError(t, json.Unmarshal([]byte(`"a\u00e9"`), &out))
	assert.Equal(t, "aé", out.String())

	assert.Error(t, json.Unmarshal([]byte(`3`), &out))
	require.NoError(t, json.Unmarshal([]byte(`null`), &out))
	assert.Equal(t, "aé", out.String())
}

func TestStringJSONStructField(t *testing.T) {
	type user struct {
		Name String[size8] `json:"name"`
	}

	var u user
	require.NoError(t, json.Unmarshal([]byte(`{"name":"ferris"}`), &u))
	assert.Equal(t, "ferris", u.Name.String())

	err := json.Unmarshal([]byte(`{"name":"ferris the crab"}`), &u)
	var le *LengthError[size8]
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindString, le.Kind)
	assert.Equal(t, 15, le.Len)
}

func TestStringTextAndBinary(t *testing.T) {
	s := Must(NewString[size5]("key"))
	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte("key"), text)

	var out String[size5]
	require.NoError(t, out.UnmarshalText(text))
	assert.Equal(t, s, out)
	assert.ErrorIs(t, out.UnmarshalText([]byte("longer")), ErrTooLong)

	bin, err := s.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, out.UnmarshalBinary(bin))
	assert.Equal(t, s, out)
}

func TestStringYAML(t *testing.T) {
	b, err := yaml.Marshal(map[string]String[size5]{"name": Must(NewString[size5]("abc"))})
	require.NoError(t, err)
	assert.Equal(t, "name: abc\n", string(b))

	var out map[string]String[size5]
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, "abc", out["name"].String())

	assert.ErrorIs(t, yaml.Unmarshal([]byte("name: abcdef\n"), &out), ErrTooLong)
	assert.Error(t, yaml.Unmarshal([]byte("name: [a]\n"), &out))
}

func TestStringYAMLChecksDecodedLength(t *testing.T) {
	// YWJj is base64 for "abc": four encoded bytes, three decoded.
	var s String[size3]
	require.NoError(t, yaml.Unmarshal([]byte("!!binary YWJj\n"), &s))
	assert.Equal(t, "abc", s.String())

	err := yaml.Unmarshal([]byte("!!binary YWJjZA==\n"), &s)
	var le *LengthError[size3]
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 4, le.Len)
	assert.Equal(t, "abc", s.String())
}

func TestStringMsgp(t *testing.T) {
	s := Must(NewString[size5]("añb"))
	b, err := s.MarshalMsg(nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(b), s.Msgsize())

	var out String[size5]
	rest, err := out.UnmarshalMsg(b)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, s, out)

	long := msgp.AppendString(nil, "abcdef")
	rest, err = out.UnmarshalMsg(long)
	require.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, long, rest)
	assert.Equal(t, "añb", out.String())

	_, err = out.UnmarshalMsg(msgp.AppendInt(nil, 1))
	assert.Error(t, err)
}
