package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	URL  string   `json:"url"`
	Tags []string `json:"tags"`
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	data := sample{URL: "https://rpc.example/?a=1&b=<2>", Tags: []string{"x"}}

	minified, err := Marshal(data, false)
	require.NoError(t, err)
	assert.Equal(t, `{"url":"https://rpc.example/?a=1&b=<2>","tags":["x"]}`, string(minified))

	pretty, err := Marshal(data, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"url\": \"https://rpc.example/?a=1&b=<2>\",\n  \"tags\": [\n    \"x\"\n  ]\n}", string(pretty))
}

func TestWriterAndReaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sample.json")

	require.NoError(t, NewWriter().WriteJSON(path, sample{URL: "https://a", Tags: []string{"b"}}))

	var got sample
	require.NoError(t, NewReader().ReadJSON(path, &got))
	assert.Equal(t, sample{URL: "https://a", Tags: []string{"b"}}, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), raw[len(raw)-1])
}

func TestReaderErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewReader().ReadBytes(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, NewWriter().WriteBytes(path, []byte("{")))

	var target sample
	require.Error(t, NewReader().ReadJSON(path, &target))
}
