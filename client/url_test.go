package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testBase = "https://www.pastery.net"

func TestCreateURLDefaults(t *testing.T) {
	got := createURL(testBase, "foo", CreateOptions{
		Duration: 24 * time.Hour,
	})
	assert.Equal(t, "https://www.pastery.net/api/paste/?api_key=foo&language=autodetect&duration=1440", got)
}

func TestCreateURLAllParams(t *testing.T) {
	got := createURL(testBase, "foo", CreateOptions{
		Language: "rust",
		Duration: time.Hour,
		Title:    "my paste",
		MaxViews: 5,
	})
	assert.Equal(t, "https://www.pastery.net/api/paste/?api_key=foo&language=rust&duration=60&max_views=5&title=my+paste", got)
}

func TestCreateURLParameterOrder(t *testing.T) {
	// Order is fixed: api_key, language, duration, max_views, title.
	got := createURL(testBase, "k", CreateOptions{
		Language: "go",
		Duration: time.Minute,
		Title:    "t",
		MaxViews: 1,
	})
	assert.Equal(t, "https://www.pastery.net/api/paste/?api_key=k&language=go&duration=1&max_views=1&title=t", got)
}

func TestCreateURLMaxViews(t *testing.T) {
	// Zero means "no view-based expiration" and the parameter is omitted.
	got := createURL(testBase, "foo", CreateOptions{Duration: time.Hour, MaxViews: 0})
	assert.NotContains(t, got, "max_views")

	got = createURL(testBase, "foo", CreateOptions{Duration: time.Hour, MaxViews: 100})
	assert.Contains(t, got, "&max_views=100")
}

func TestCreateURLTitleEncoding(t *testing.T) {
	got := createURL(testBase, "foo", CreateOptions{
		Duration: time.Hour,
		Title:    "foo bar.rs",
	})
	assert.Contains(t, got, "&title=foo+bar.rs")
}

func TestCreateURLTitleFromPath(t *testing.T) {
	got := createURL(testBase, "foo", CreateOptions{
		Duration: time.Hour,
		Path:     "foo/bar.rs",
	})
	assert.Contains(t, got, "&title=bar.rs")
}

func TestCreateURLExplicitTitleWins(t *testing.T) {
	got := createURL(testBase, "foo", CreateOptions{
		Duration: time.Hour,
		Title:    "explicit",
		Path:     "foo/bar.rs",
	})
	assert.Contains(t, got, "&title=explicit")
	assert.NotContains(t, got, "bar.rs")
}

func TestCreateURLNoTitleNoPath(t *testing.T) {
	got := createURL(testBase, "foo", CreateOptions{Duration: time.Hour})
	assert.NotContains(t, got, "title")
}

func TestCreateURLLanguageFallback(t *testing.T) {
	// Unknown languages resolve to autodetect, and aliases canonicalize.
	got := createURL(testBase, "foo", CreateOptions{Duration: time.Hour, Language: "asdf"})
	assert.Contains(t, got, "&language=autodetect")

	got = createURL(testBase, "foo", CreateOptions{Duration: time.Hour, Language: "golang"})
	assert.Contains(t, got, "&language=go")
}

func TestCreateURLSubMinuteDuration(t *testing.T) {
	// Sub-minute spans floor to 0 minutes; the parameter is still present.
	got := createURL(testBase, "foo", CreateOptions{Duration: 30 * time.Second})
	assert.Contains(t, got, "&duration=0")
}

func TestCreateURLAPIKeyEncoding(t *testing.T) {
	got := createURL(testBase, "key&with=specials", CreateOptions{Duration: time.Hour})
	assert.Contains(t, got, "?api_key=key%26with%3Dspecials&")
}

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		path  string
		want  string
	}{
		{"explicit wins", "explicit", "dir/file.go", "explicit"},
		{"basename of path", "", "dir/sub/file.go", "file.go"},
		{"bare filename", "", "file.go", "file.go"},
		{"neither", "", "", ""},
		{"invalid utf8 made lossy", "", "dir/na\xffme.rs", "na�me.rs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveTitle(tt.title, tt.path))
		})
	}
}
