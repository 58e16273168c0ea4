package quotes

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoicfocus/internal/core/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_JSONAndYAML(t *testing.T) {
	t.Parallel()

	fromJSON, err := Parse([]byte(`[{"text": "A", "author": "B"}]`))
	require.NoError(t, err)
	assert.Equal(t, []model.Quote{{Text: "A", Author: "B"}}, fromJSON)

	fromYAML, err := Parse([]byte("- text: C\n  author: D\n- text: E\n  author: F\n"))
	require.NoError(t, err)
	assert.Len(t, fromYAML, 2)
	assert.Equal(t, "F", fromYAML[1].Author)

	escaped, err := Parse([]byte("\n\t[{\"text\": \"a\\/b \\u00e9\", \"author\": \"x\"}]"))
	require.NoError(t, err)
	assert.Equal(t, []model.Quote{{Text: "a/b é", Author: "x"}}, escaped)

	flowYAML, err := Parse([]byte("[{text: G, author: H}]"))
	require.NoError(t, err)
	assert.Equal(t, []model.Quote{{Text: "G", Author: "H"}}, flowYAML)
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()

	for name, data := range map[string]string{
		"empty list": "[]",
		"empty file": "",
		"not a list": `{"text": "A"}`,
		"broken":     `[{"text": `,
	} {
		name, data := name, data
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(data))
			require.ErrorIs(t, err, ErrSourceUnavailable)
		})
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	t.Parallel()

	source := FileSource(filepath.Join(t.TempDir(), "quotes.json"), nil)
	_, err := source.Random()
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestFileSource_RereadsOnEveryDraw(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "quotes.json", `[{"text": "first", "author": "one"}]`)
	source := FileSource(path, rand.New(rand.NewSource(1)))

	quote, err := source.Random()
	require.NoError(t, err)
	assert.Equal(t, "first", quote.Text)

	require.NoError(t, os.WriteFile(path, []byte(`[{"text": "second", "author": "two"}]`), 0o644))
	quote, err = source.Random()
	require.NoError(t, err)
	assert.Equal(t, "second", quote.Text)
}

func TestSource_DrawsEveryEntry(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "quotes.yaml", "- {text: a, author: x}\n- {text: b, author: x}\n- {text: c, author: x}\n")
	source := FileSource(path, rand.New(rand.NewSource(42)))

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		quote, err := source.Random()
		require.NoError(t, err)
		seen[quote.Text]++
	}
	assert.Len(t, seen, 3)
	for _, count := range seen {
		assert.Greater(t, count, 50)
	}
}

func TestBundledSource(t *testing.T) {
	t.Parallel()

	quote, err := BundledSource(nil).Random()
	require.NoError(t, err)
	assert.NotEmpty(t, quote.Text)
	assert.NotEmpty(t, quote.Author)
}
