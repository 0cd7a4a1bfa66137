package movie_api

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// whitespaceRe matches unicode separators too, not only ascii \s.
var whitespaceRe = regexp.MustCompile(`[\s\p{Z}\x{85}\x{FEFF}]+`)

// keywordSeparator is what the api search syntax expects between words.
const keywordSeparator = "% "

func searchQuery(f Filters) url.Values {
	q := url.Values{}
	if f.Keywords != "" {
		q.Set("keywords", whitespaceRe.ReplaceAllLiteralString(f.Keywords, keywordSeparator))
	}
	if f.Genre != "" {
		q.Set("genre", f.Genre)
	}
	if f.Order != 0 {
		q.Set("order", strconv.Itoa(f.Order))
	}
	if f.Sorter != "" && f.Sorter != SorterPopularity {
		q.Set("sort", f.Sorter)
	}
	return q
}

func page(f Filters) int {
	if f.Page <= 0 {
		return 1
	}
	return f.Page
}

// parsePercentage reads the leading integer of s the way the api's own
// clients do: "85", "85.6" and "85%" all give 85, garbage gives 0.
func parsePercentage(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// selectTorrents prefers english and falls back to the first language in response order.
func selectTorrents(langs Languages) Qualities {
	if q, ok := langs.Get(LangEnglish); ok {
		return q
	}
	if _, q, ok := langs.First(); ok {
		return q
	}
	return Qualities{}
}

func formatDetail(m RawItem) Item {
	return Item{
		ImdbID:   m.ImdbID,
		Title:    m.Title,
		Year:     m.Year.String(),
		Genres:   m.Genres,
		Rating:   float64(parsePercentage(m.Rating.Percentage.String())) / 10,
		Poster:   m.Images.Poster,
		Backdrop: m.Images.Fanart,
		Type:     ItemTypeMovie,
		Runtime:  m.Runtime.String(),
		Synopsis: m.Synopsis,
		Subtitle: map[string]string{},
		Trailer:  m.Trailer,
		Langs:    m.Torrents,
		Torrents: selectTorrents(m.Torrents),
	}
}

func formatFetch(ms []RawItem, s Sanitizer) *FetchResult {
	results := make([]Item, 0, len(ms))
	for _, m := range ms {
		results = append(results, formatDetail(m))
	}
	if s != nil {
		results = s.Sanitize(results)
	}
	return &FetchResult{
		Results: results,
		HasMore: true,
	}
}
