package movie_api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Api talks to the movie api and returns items in host shape.
// It holds no mutable state and is safe for concurrent use.
type Api struct {
	urls           []string
	lang           string
	cloudflareHost string
	manifest       *Manifest
	cl             *http.Client
	sanitizer      Sanitizer
}

func NewApi(cfg Config, cl *http.Client, s Sanitizer) (*Api, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if cl == nil {
		cl = http.DefaultClient
	}
	return &Api{
		urls:           cfg.URLs,
		lang:           cfg.Lang,
		cloudflareHost: cfg.CloudflareHost,
		manifest:       cfg.Manifest,
		cl:             cl,
		sanitizer:      s,
	}, nil
}

func New(c *cli.Context, cl *http.Client, s Sanitizer) (*Api, error) {
	cfg, err := configFromContext(c)
	if err != nil {
		return nil, err
	}
	api, err := NewApi(cfg, cl, s)
	if err != nil {
		return nil, err
	}
	log.Infof("movie api endpoints %v", api.urls)
	return api, nil
}

func (api *Api) Manifest() *Manifest {
	return api.manifest
}

func (api *Api) Lang() string {
	return api.lang
}

func (api *Api) Search(ctx context.Context, f Filters) (*FetchResult, error) {
	path := fmt.Sprintf("movies/%d", page(f))
	ms, err := fetch[[]RawItem](ctx, api, path, searchQuery(f))
	if err != nil {
		return nil, errors.Wrap(err, "search movies")
	}
	return formatFetch(ms, api.sanitizer), nil
}

// Detail returns cached as is when it is not nil.
func (api *Api) Detail(ctx context.Context, id string, cached *Item) (*Item, error) {
	if cached != nil {
		return cached, nil
	}
	m, err := fetch[RawItem](ctx, api, "movie/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "get movie %v", id)
	}
	it := formatDetail(m)
	return &it, nil
}

func (api *Api) Random(ctx context.Context) (*Item, error) {
	m, err := fetch[RawItem](ctx, api, "random/movie", nil)
	if err != nil {
		return nil, errors.Wrap(err, "get random movie")
	}
	it := formatDetail(m)
	return &it, nil
}

// ExtractIDs returns the manifest unique_id field of every result.
func (api *Api) ExtractIDs(r *FetchResult) []string {
	if r == nil {
		return nil
	}
	id := idFields[api.manifest.UniqueID]
	ids := make([]string, 0, len(r.Results))
	for i := range r.Results {
		ids = append(ids, id(&r.Results[i]))
	}
	return ids
}

// ResolveStream picks the torrent for the filter language and quality.
// Quality "none" (or empty) means the first quality the api listed.
func (api *Api) ResolveStream(f Filters, item *Item) (*Torrent, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	lang := f.Lang
	if lang == "" {
		lang = api.lang
	}
	qs, ok := item.Langs.Get(lang)
	if !ok {
		return nil, &LookupError{Lang: lang}
	}
	quality := f.Quality
	if quality == "" || quality == QualityNone {
		k, _, ok := qs.First()
		if !ok {
			return nil, &LookupError{Lang: lang, Quality: QualityNone}
		}
		quality = k
	}
	t, ok := qs.Get(quality)
	if !ok {
		return nil, &LookupError{Lang: lang, Quality: quality}
	}
	return &t, nil
}
