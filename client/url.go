package client

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tombowditch/pastery-cli/internal/duration"
	"github.com/tombowditch/pastery-cli/internal/language"
)

// CreateOptions configures paste creation.
type CreateOptions struct {
	// Language is the language tag for syntax highlighting. Unknown or
	// empty values fall back to autodetection by the service.
	Language string

	// Duration is how long the paste lives before it is deleted.
	Duration time.Duration

	// Title is the paste title. If empty and Path is set, the title is
	// derived from the path's filename.
	Title string

	// MaxViews expires the paste after this many views. Zero means no
	// view-based expiration.
	MaxViews uint32

	// Path is the file the paste body was read from, if any. It is used
	// only for title inference, never read.
	Path string
}

// createURL assembles the paste-creation URL. The service ignores
// parameter order, but emitting it fixed keeps generated URLs
// reproducible: api_key, language, duration, then the optionals.
func createURL(baseURL, apiKey string, opts CreateOptions) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString(apiPath)
	b.WriteString("?api_key=")
	b.WriteString(url.QueryEscape(apiKey))
	b.WriteString("&language=")
	b.WriteString(url.QueryEscape(language.Resolve(opts.Language)))
	b.WriteString("&duration=")
	b.WriteString(strconv.FormatInt(duration.Minutes(opts.Duration), 10))

	if opts.MaxViews > 0 {
		b.WriteString("&max_views=")
		b.WriteString(strconv.FormatUint(uint64(opts.MaxViews), 10))
	}

	if title := resolveTitle(opts.Title, opts.Path); title != "" {
		b.WriteString("&title=")
		b.WriteString(url.QueryEscape(title))
	}

	return b.String()
}

// resolveTitle picks the paste title: an explicit title wins, otherwise
// the filename component of the path. Returns "" when neither applies.
func resolveTitle(title, path string) string {
	if title != "" {
		return title
	}
	if path == "" {
		return ""
	}
	return strings.ToValidUTF8(filepath.Base(path), "�")
}
