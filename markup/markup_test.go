package markup_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocutil/markup"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain", "hello", "hello\x1b[0m"},
		{"empty", "", "\x1b[0m"},
		{"basic", "[red]x[-]y", "\x1b[31mx\x1b[0my\x1b[0m"},
		{"bright", "[+cyan]hi", "\x1b[36;1mhi\x1b[0m"},
		{"bright vs plain", "[+white][white]", "\x1b[37;1m\x1b[37m\x1b[0m"},
		{"leading spaces", "[  green]ok", "\x1b[32mok\x1b[0m"},
		{"unknown kept", "[orange]x", "[orange]x\x1b[0m"},
		{"unclosed kept", "[red", "[red\x1b[0m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, markup.Apply(tc.in))
		})
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "error: disk", markup.Strip("[red]error[-]: [ +white]disk"))
	assert.Equal(t, "[orange]x", markup.Strip("[orange]x"))
	assert.Equal(t, "", markup.Strip(""))
}

func TestNames(t *testing.T) {
	names := markup.Names()
	require.Len(t, names, 17)
	assert.Equal(t, "-", names[0])
	assert.Contains(t, names, "+magenta")
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]markup.ColorMode{
		"":       markup.ColorAuto,
		"auto":   markup.ColorAuto,
		"always": markup.ColorAlways,
		"never":  markup.ColorNever,
	} {
		got, err := markup.ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if in != "" {
			assert.Equal(t, in, got.String())
		}
	}

	_, err := markup.ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestWriter_AutoOnBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	w := markup.NewWriter(&buf)
	assert.False(t, w.Colored())

	require.NoError(t, w.WriteLine("[green]ok[-] done"))
	assert.Equal(t, "ok done\n", buf.String())
}

func TestWriter_Always(t *testing.T) {
	var buf bytes.Buffer
	w := markup.NewWriter(&buf, markup.WithColorMode(markup.ColorAlways))
	assert.True(t, w.Colored())

	require.NoError(t, w.WriteLine("[yellow]warn"))
	assert.Equal(t, "\x1b[33mwarn\x1b[0m\n", buf.String())
}

func TestWriteArray(t *testing.T) {
	var buf bytes.Buffer
	w := markup.NewWriter(&buf, markup.WithColorMode(markup.ColorNever))

	require.NoError(t, markup.WriteArray(w, "ints", []*int{nil}))
	require.NoError(t, markup.WriteArray(w, "words", []string{"[red]a", "b"}))
	require.NoError(t, markup.WriteArray[any](w, "mixed", []any{nil, 7}))

	want := "ints {\n   <nil>,\n}\n" +
		"words {\n   a,\n   b,\n}\n" +
		"mixed {\n   <nil>,\n   7,\n}\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWriter_PropagatesErrors(t *testing.T) {
	w := markup.NewWriter(failingWriter{})
	assert.ErrorIs(t, w.WriteLine("x"), errSink)
	assert.ErrorIs(t, markup.WriteArray(w, "x", []int{1}), errSink)
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, markup.IsTerminal(&bytes.Buffer{}))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, markup.IsTerminal(f))
	assert.False(t, markup.NewWriter(f).Colored())
}
