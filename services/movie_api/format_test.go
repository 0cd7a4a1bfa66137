package movie_api

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

const rawMovieJSON = `{
	"_id": "tt0111161",
	"imdb_id": "tt0111161",
	"title": "The Shawshank Redemption",
	"year": "1994",
	"synopsis": "Two imprisoned men bond over a number of years.",
	"runtime": "142",
	"trailer": "http://youtube.com/watch?v=6hB3S9bIaco",
	"genres": ["drama", "crime"],
	"images": {
		"poster": "http://image.tmdb.org/poster.jpg",
		"fanart": "http://image.tmdb.org/fanart.jpg",
		"banner": "http://image.tmdb.org/banner.jpg"
	},
	"rating": {"percentage": 93, "watching": 1, "votes": 100, "loved": 100, "hated": 100},
	"torrents": {
		"fr": {"720p": {"url": "magnet:?xt=urn:btih:fr720", "seed": 5, "peer": 1, "size": 1000, "filesize": "1 kB", "provider": "YTS"}},
		"en": {
			"1080p": {"url": "magnet:?xt=urn:btih:en1080", "seed": 100, "peer": 10, "size": 2000000000, "filesize": "1.86 GB", "provider": "YTS"},
			"720p": {"url": "magnet:?xt=urn:btih:en720", "seed": 50, "peer": 5, "size": 900000000, "filesize": "858 MB", "provider": "YTS"}
		}
	}
}`

func decodeRaw(t *testing.T, s string) RawItem {
	t.Helper()
	var m RawItem
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("Failed to decode raw item: %v", err)
	}
	return m
}

func TestFormatDetail(t *testing.T) {
	it := formatDetail(decodeRaw(t, rawMovieJSON))

	if it.ImdbID != "tt0111161" {
		t.Errorf("Expected imdb_id tt0111161, got %s", it.ImdbID)
	}
	if it.Title != "The Shawshank Redemption" || it.Year != "1994" || it.Runtime != "142" {
		t.Errorf("Unexpected title/year/runtime: %q %q %q", it.Title, it.Year, it.Runtime)
	}
	if it.Rating != 9.3 {
		t.Errorf("Expected rating 9.3, got %v", it.Rating)
	}
	if it.Poster != "http://image.tmdb.org/poster.jpg" || it.Backdrop != "http://image.tmdb.org/fanart.jpg" {
		t.Errorf("Unexpected images: %q %q", it.Poster, it.Backdrop)
	}
	if it.Type != ItemTypeMovie {
		t.Errorf("Expected type movie, got %s", it.Type)
	}
	if it.Subtitle == nil || len(it.Subtitle) != 0 {
		t.Errorf("Expected empty subtitle object, got %v", it.Subtitle)
	}
	if !reflect.DeepEqual(it.Genres, []string{"drama", "crime"}) {
		t.Errorf("Unexpected genres %v", it.Genres)
	}
	if got := it.Langs.Keys(); !reflect.DeepEqual(got, []string{"fr", "en"}) {
		t.Errorf("Expected langs [fr en], got %v", got)
	}
	if got := it.Torrents.Keys(); !reflect.DeepEqual(got, []string{"1080p", "720p"}) {
		t.Errorf("Expected english torrents, got %v", got)
	}

	out, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, want := range []string{`"type":"movie"`, `"subtitle":{}`, `"backdrop":`, `"langs":{"fr":`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Expected %s in %s", want, out)
		}
	}
}

func TestFormatDetail_TorrentsFallBackToFirstLanguage(t *testing.T) {
	m := decodeRaw(t, `{"imdb_id":"tt1","rating":{"percentage":"70"},"torrents":{"de":{"480p":{"url":"a"}},"fr":{"720p":{"url":"b"}}}}`)
	it := formatDetail(m)
	tor, ok := it.Torrents.Get("480p")
	if !ok || tor.URL != "a" {
		t.Errorf("Expected first language torrents, got %v", it.Torrents.Keys())
	}
}

func TestFormatDetail_NoTorrents(t *testing.T) {
	it := formatDetail(decodeRaw(t, `{"imdb_id":"tt1"}`))
	if it.Torrents.Len() != 0 || it.Langs.Len() != 0 {
		t.Error("Expected empty torrent maps")
	}
	if it.Rating != 0 {
		t.Errorf("Expected rating 0, got %v", it.Rating)
	}
}

func TestFormatDetail_NumericYearAndRuntime(t *testing.T) {
	it := formatDetail(decodeRaw(t, `{"imdb_id":"tt1","year":2010,"runtime":148}`))
	if it.Year != "2010" || it.Runtime != "148" {
		t.Errorf("Expected 2010/148, got %q/%q", it.Year, it.Runtime)
	}
}

func TestRatingScale(t *testing.T) {
	for n := 0; n <= 100; n++ {
		m := RawItem{Rating: RawRating{Percentage: FlexString(strconv.Itoa(n))}}
		got := formatDetail(m).Rating
		want := float64(n) / 10
		if got != want {
			t.Fatalf("percentage %d: expected %v, got %v", n, want, got)
		}
		if got < 0 || got > 10 {
			t.Fatalf("percentage %d: rating %v out of range", n, got)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"85", 85},
		{" 85 ", 85},
		{"85.6", 85},
		{"85%", 85},
		{"", 0},
		{"abc", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		if got := parsePercentage(tt.in); got != tt.want {
			t.Errorf("parsePercentage(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want map[string]string
	}{
		{
			name: "empty",
			f:    Filters{},
			want: map[string]string{},
		},
		{
			name: "popularity sorter is omitted",
			f:    Filters{Sorter: "popularity", Genre: "action"},
			want: map[string]string{"genre": "action"},
		},
		{
			name: "other sorter is sent",
			f:    Filters{Sorter: "rating", Order: -1},
			want: map[string]string{"sort": "rating", "order": "-1"},
		},
		{
			name: "keywords whitespace",
			f:    Filters{Keywords: "the  dark\tknight rises"},
			want: map[string]string{"keywords": "the% dark% knight% rises"},
		},
		{
			name: "keywords unicode whitespace",
			f:    Filters{Keywords: "star\u00a0wars\u3000ep\u2028iv\ufeffhope"},
			want: map[string]string{"keywords": "star% wars% ep% iv% hope"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := searchQuery(tt.f)
			if len(q) != len(tt.want) {
				t.Errorf("Expected %d params, got %v", len(tt.want), q)
			}
			for k, v := range tt.want {
				if got := q.Get(k); got != v {
					t.Errorf("Expected %s=%q, got %q", k, v, got)
				}
			}
		})
	}
}

func TestPage(t *testing.T) {
	if page(Filters{}) != 1 || page(Filters{Page: -3}) != 1 || page(Filters{Page: 4}) != 4 {
		t.Error("Unexpected page defaults")
	}
}

type upperSanitizer struct {
	calls int
}

func (s *upperSanitizer) Sanitize(items []Item) []Item {
	s.calls++
	for i := range items {
		items[i].Title = strings.ToUpper(items[i].Title)
	}
	return items
}

func TestFormatFetch(t *testing.T) {
	s := &upperSanitizer{}
	r := formatFetch([]RawItem{decodeRaw(t, rawMovieJSON)}, s)
	if !r.HasMore {
		t.Error("Expected hasMore to be true")
	}
	if s.calls != 1 {
		t.Errorf("Expected sanitizer to be called once, got %d", s.calls)
	}
	if len(r.Results) != 1 || r.Results[0].Title != "THE SHAWSHANK REDEMPTION" {
		t.Errorf("Unexpected results %+v", r.Results)
	}

	r = formatFetch(nil, nil)
	if r.Results == nil || len(r.Results) != 0 || !r.HasMore {
		t.Errorf("Unexpected empty result %+v", r)
	}
}
