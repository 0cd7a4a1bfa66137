package movie_api

import (
	"bytes"
	"encoding/json"
)

type ItemType string

const (
	ItemTypeMovie ItemType = "movie"
)

func (t ItemType) String() string {
	return string(t)
}

const (
	SorterPopularity = "popularity"
	QualityNone      = "none"
	LangEnglish      = "en"
)

// Filters narrows a catalog fetch and selects a stream.
type Filters struct {
	Keywords string
	Genre    string
	Order    int
	Sorter   string
	Quality  string
	Lang     string
	Page     int
}

// Torrent is the descriptor returned by the api for a single quality.
type Torrent struct {
	URL      string `json:"url"`
	Seed     int    `json:"seed"`
	Peer     int    `json:"peer"`
	Size     int64  `json:"size,omitempty"`
	Filesize string `json:"filesize,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Qualities maps quality label (720p, 1080p...) to torrent.
type Qualities = OrderedMap[Torrent]

// Languages maps language code to available qualities.
type Languages = OrderedMap[Qualities]

// FlexString accepts both JSON strings and numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

type RawRating struct {
	Percentage FlexString `json:"percentage"`
	Watching   int        `json:"watching,omitempty"`
	Votes      int        `json:"votes,omitempty"`
	Loved      int        `json:"loved,omitempty"`
	Hated      int        `json:"hated,omitempty"`
}

type RawImages struct {
	Poster string `json:"poster"`
	Fanart string `json:"fanart"`
	Banner string `json:"banner,omitempty"`
}

// RawItem is a movie as returned by the api.
type RawItem struct {
	ImdbID   string     `json:"imdb_id"`
	Title    string     `json:"title"`
	Year     FlexString `json:"year"`
	Genres   []string   `json:"genres"`
	Rating   RawRating  `json:"rating"`
	Images   RawImages  `json:"images"`
	Runtime  FlexString `json:"runtime"`
	Synopsis string     `json:"synopsis"`
	Trailer  string     `json:"trailer"`
	Torrents Languages  `json:"torrents"`
}

// Item is a movie in the shape the host expects.
type Item struct {
	ImdbID   string            `json:"imdb_id"`
	Title    string            `json:"title"`
	Year     string            `json:"year"`
	Genres   []string          `json:"genres"`
	Rating   float64           `json:"rating"`
	Poster   string            `json:"poster"`
	Backdrop string            `json:"backdrop"`
	Type     ItemType          `json:"type"`
	Runtime  string            `json:"runtime"`
	Synopsis string            `json:"synopsis"`
	Subtitle map[string]string `json:"subtitle"`
	Trailer  string            `json:"trailer"`
	Langs    Languages         `json:"langs"`
	Torrents Qualities         `json:"torrents"`
}

// idFields are the item fields a manifest may use as unique_id.
var idFields = map[string]func(*Item) string{
	"imdb_id": func(it *Item) string { return it.ImdbID },
	"title":   func(it *Item) string { return it.Title },
	"trailer": func(it *Item) string { return it.Trailer },
}

type FetchResult struct {
	Results []Item `json:"results"`
	HasMore bool   `json:"hasMore"`
}

// Sanitizer cleans normalized results before they are handed to the host.
type Sanitizer interface {
	Sanitize(items []Item) []Item
}
