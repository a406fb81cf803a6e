package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"topics/sprites.md":     {Data: []byte("# Sprites\n\nWhere sprites come from")},
		"topics/option-mode.md": {Data: []byte("# Mode\n\nhalfblock or fullcolor")},
		"topics/config.txt":     {Data: []byte("Configuration Guide")},
		"topics/notes.json":     {Data: []byte(`{"ignored": true}`)},
		"other/outside.md":      {Data: []byte("not under the root")},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		want       []string
	}{
		{
			name: "default extensions",
			want: []string{"config", "option-mode", "sprites"},
		},
		{
			name:       "markdown only",
			extensions: []string{".md"},
			want:       []string{"option-mode", "sprites"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New(Options{Extensions: tt.extensions})
			require.NoError(t, tm.Load(testFS(), "topics"))
			assert.Equal(t, tt.want, tm.ListTopics())
		})
	}
}

func TestLoadMissingRoot(t *testing.T) {
	tm := New(Options{})
	assert.Error(t, tm.Load(testFS(), "nope"))
}

func TestGetTopic(t *testing.T) {
	tm := New(Options{})
	require.NoError(t, tm.Load(testFS(), "topics"))

	tests := []struct {
		query string
		name  string
		found bool
	}{
		{query: "sprites", name: "sprites", found: true},
		{query: "mode", name: "option-mode", found: true},
		{query: "--mode", name: "option-mode", found: true},
		{query: "-mode", name: "option-mode", found: true},
		{query: "option-mode", name: "option-mode", found: true},
		{query: "missing", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.name, topic.Name)
			}
		})
	}
}

func TestWriteIndex(t *testing.T) {
	tm := New(Options{})
	require.NoError(t, tm.Load(testFS(), "topics"))

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "pokedex")
	out := buf.String()

	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  sprites")
	assert.Contains(t, out, "Option topics:")
	assert.Contains(t, out, "  --mode")
	assert.Contains(t, out, "'pokedex help <topic>'")
}

func TestWriteIndexEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(Options{}).WriteIndex(&buf, "pokedex")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + format
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "pokedex", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "version", Short: "Print version information", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS(), "topics", Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "topic", args: []string{"help", "sprites"}, want: "# SPRITES\n\nWHERE SPRITES COME FROM.md"},
		{name: "flag topic", args: []string{"help", "--mode"}, want: "HALFBLOCK OR FULLCOLOR"},
		{name: "topic index", args: []string{"help", "topics"}, want: "Available help topics:"},
		{name: "command", args: []string{"help", "version"}, want: "Print version information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, buf := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Sprites\n\nSome **bold** text", ".md")
	assert.Contains(t, out, "Sprites")
	assert.Contains(t, out, "bold")
}
