package sanitize

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	ma "github.com/webtor-io/movie-api-provider/services/movie_api"
)

// Sanitizer cleans normalized items before they reach the host:
// markup is stripped from text, non-http urls are dropped and
// items without an id are removed.
type Sanitizer struct{}

var _ ma.Sanitizer = (*Sanitizer)(nil)

func New() *Sanitizer {
	return &Sanitizer{}
}

func (s *Sanitizer) Sanitize(items []ma.Item) []ma.Item {
	res := make([]ma.Item, 0, len(items))
	for _, it := range items {
		it.ImdbID = strings.TrimSpace(it.ImdbID)
		if it.ImdbID == "" {
			log.WithField("title", it.Title).Warn("dropping movie without id")
			continue
		}
		it.Title = Text(it.Title)
		it.Synopsis = Text(it.Synopsis)
		it.Year = strings.TrimSpace(it.Year)
		it.Runtime = strings.TrimSpace(it.Runtime)
		it.Genres = genres(it.Genres)
		it.Poster = URL(it.Poster)
		it.Backdrop = URL(it.Backdrop)
		it.Trailer = URL(it.Trailer)
		if it.Subtitle == nil {
			it.Subtitle = map[string]string{}
		}
		res = append(res, it)
	}
	return res
}

func genres(in []string) []string {
	out := make([]string, 0, len(in))
	for _, g := range in {
		g = Text(g)
		if g == "" {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Text strips html markup and collapses whitespace.
func Text(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return normSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return normSpace(s)
	}
	doc.Find("script, style").Remove()
	return normSpace(doc.Text())
}

// URL returns s if it is an absolute http(s) url, otherwise empty string.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return s
}

func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
