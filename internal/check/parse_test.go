package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	for _, in := range []string{
		`{}`,
		`[]`,
		`{"id": 1, "tags": ["a", "b"], "nested": {"ok": true, "n": null}}`,
		"  \n{\"a\": 1}\n\n",
		`"just a string"`,
		`42`,
	} {
		assert.NoError(t, Parse(in), "input %q", in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		`{"id": 1,}`,
		`{'a': 1}`,
		`{"a": 1} {"b": 2}`,
		`{"a": }`,
		``,
		`{"a": NaN}`,
	} {
		err := Parse(in)
		require.Error(t, err, "input %q", in)

		var pe *ParseError
		assert.True(t, errors.As(err, &pe), "input %q", in)
	}
}

func TestParse_Position(t *testing.T) {
	err := Parse(`{"id": 1,}`)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 9, pe.Char)
	assert.Contains(t, pe.Error(), "line 1 column 10 (char 9)")

	err = Parse("{\n  \"a\": 1,\n}")
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, 1, pe.Column)
}

func TestParseError_NoPosition(t *testing.T) {
	pe := &ParseError{Msg: "boom"}
	assert.Equal(t, "boom", pe.Error())
}
