package services

import (
	"testing"
	"time"

	"blog/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter_Formats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		body   string
	}{
		{"yaml", "---\ntitle: Hello\n---\nBody text\n", "yaml", "Body text"},
		{"yaml crlf", "---\r\ntitle: Hello\r\n---\r\nBody\r\n", "yaml", "Body"},
		{"toml", "+++\ntitle = \"Hello\"\n+++\n\nBody\n", "toml", "Body"},
		{"json", "{\"title\": \"Hello\"}", "json", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, format, err := ParseFrontMatter([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, "Hello", fm["title"])
			assert.Equal(t, tt.body, body)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestParseFrontMatter_Unknown(t *testing.T) {
	_, _, _, err := ParseFrontMatter([]byte("# just markdown"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeArticle(t *testing.T) {
	fm, _, _, err := ParseFrontMatter([]byte("---\ntitle: Go Deep\nauthor: Ana\ntags: [go, concurrency]\npublished_at: 1700000000\n---\n"))
	require.NoError(t, err)

	a, err := DecodeArticle(fm)
	require.NoError(t, err)

	assert.Equal(t, "Go Deep", a.Title)
	assert.Equal(t, "Ana", a.Author)
	assert.Equal(t, []string{"go", "concurrency"}, a.Tags)
	assert.Equal(t, int64(1700000000), a.PublishedAt)
}

func TestDecodeArticle_TimestampForms(t *testing.T) {
	want := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC).Unix()
	inputs := []string{
		"---\ntitle: x\npublished_at: \"2023-05-01T00:00:00Z\"\n---\n",
		"---\ntitle: x\npublished_at: \"2023-05-01\"\n---\n",
		"+++\ntitle = \"x\"\npublished_at = 2023-05-01T00:00:00Z\n+++\n",
		"+++\ntitle = \"x\"\npublished_at = 2023-05-01\n+++\n",
		"{\"title\": \"x\", \"published_at\": " + "1682899200" + "}",
	}
	for _, in := range inputs {
		fm, _, _, err := ParseFrontMatter([]byte(in))
		require.NoError(t, err, in)
		a, err := DecodeArticle(fm)
		require.NoError(t, err, in)
		assert.Equal(t, want, a.PublishedAt, in)
	}
}

func TestDecodeArticle_Errors(t *testing.T) {
	_, err := DecodeArticle(map[string]interface{}{"tags": []interface{}{"a"}})
	assert.Error(t, err, "missing title")

	_, err = DecodeArticle(map[string]interface{}{"title": "x", "tags": []interface{}{1}})
	assert.Error(t, err)

	_, err = DecodeArticle(map[string]interface{}{"title": "x", "published_at": "soon"})
	assert.Error(t, err)
}

func TestConstructFileContent_RoundTrip(t *testing.T) {
	article := models.Article{Title: "Olá", Author: "Ana", Tags: []string{"b", "a"}, PublishedAt: 42}

	for _, format := range []string{"yaml", "toml", "json"} {
		t.Run(format, func(t *testing.T) {
			content, err := ConstructFileContent(EncodeArticle(article), "Body", format)
			require.NoError(t, err)

			fm, _, gotFormat, err := ParseFrontMatter(content)
			require.NoError(t, err)
			assert.Equal(t, format, gotFormat)

			got, err := DecodeArticle(fm)
			require.NoError(t, err)
			assert.Equal(t, article.Title, got.Title)
			assert.Equal(t, article.Tags, got.Tags)
			assert.Equal(t, article.PublishedAt, got.PublishedAt)
		})
	}
}

func TestConstructFileContent_UnsupportedFormat(t *testing.T) {
	_, err := ConstructFileContent(map[string]interface{}{}, "", "xml")
	assert.Error(t, err)
}
