package bind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "only spaces",
			raw:  "   \t  ",
			want: nil,
		},
		{
			name: "plain words",
			raw:  "one two three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "collapses runs of whitespace",
			raw:  "one   two\t three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "double quoted span stays one token",
			raw:  `say "hello there" friend`,
			want: []string{"say", `"hello there"`, "friend"},
		},
		{
			name: "typographic quotes",
			raw:  "say “hello there” friend",
			want: []string{"say", "“hello there”", "friend"},
		},
		{
			name: "guillemets",
			raw:  "say «hello there» friend",
			want: []string{"say", "«hello there»", "friend"},
		},
		{
			name: "unterminated quote runs to end",
			raw:  `say "hello there friend`,
			want: []string{"say", `"hello there friend`},
		},
		{
			name: "quote mid-token is literal",
			raw:  `it"s fine`,
			want: []string{`it"s`, "fine"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Tokenize(tc.raw))
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"hello there"`, "hello there"},
		{"“hello”", "hello"},
		{"«hello»", "hello"},
		{`""`, ""},
		{`"unbalanced`, `"unbalanced`},
		{"plain", "plain"},
		{`"`, `"`},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, unquote(tc.in), "unquote(%q)", tc.in)
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})

	tok, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, "a", tok)

	peeked, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, "b", peeked)

	c.Back()
	tok, ok = c.Next()
	require.True(t, ok)
	require.Equal(t, "a", tok)

	require.Equal(t, []string{"b", "c"}, c.Remaining())
	require.False(t, c.Finished())

	require.Equal(t, []string{"b", "c"}, c.ConsumeRest())
	require.True(t, c.Finished())

	_, ok = c.Next()
	require.False(t, ok)

	c.Reset()
	tok, ok = c.Next()
	require.True(t, ok)
	require.Equal(t, "a", tok)
}

func TestCursorBackAtStart(t *testing.T) {
	c := NewCursor([]string{"a"})
	c.Back() // no-op at position zero
	tok, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, "a", tok)
}
