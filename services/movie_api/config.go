package movie_api

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
)

const (
	urlFlag            = "movie-api-url"
	langFlag           = "movie-api-lang"
	cloudflareHostFlag = "movie-api-cloudflare-host"
	manifestFlag       = "movie-api-manifest"
)

const defaultCloudflareHost = "cloudflare.com"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringSliceFlag{
			Name:   urlFlag,
			Usage:  "movie api url, may be repeated, tried in order (defaults to manifest urls)",
			EnvVar: "MOVIE_API_URL",
		},
		cli.StringFlag{
			Name:   langFlag,
			Usage:  "movie api default language (defaults to manifest language)",
			EnvVar: "MOVIE_API_LANG",
		},
		cli.StringFlag{
			Name:   cloudflareHostFlag,
			Usage:  "host used for cloudflare+ prefixed urls",
			Value:  defaultCloudflareHost,
			EnvVar: "MOVIE_API_CLOUDFLARE_HOST",
		},
		cli.StringFlag{
			Name:   manifestFlag,
			Usage:  "path to provider manifest (yaml)",
			EnvVar: "MOVIE_API_MANIFEST",
		},
	)
}

// Config holds everything the client needs. It is not modified after NewApi.
type Config struct {
	URLs           []string
	Lang           string
	CloudflareHost string
	Manifest       *Manifest
}

// DefaultConfig takes urls and language from the manifest defaults.
func DefaultConfig(m *Manifest) Config {
	urls := make([]string, len(m.Defaults.APIURL))
	copy(urls, m.Defaults.APIURL)
	return Config{
		URLs:           urls,
		Lang:           m.Defaults.Lang,
		CloudflareHost: defaultCloudflareHost,
		Manifest:       m,
	}
}

func configFromContext(c *cli.Context) (Config, error) {
	m, err := LoadManifest(c.String(manifestFlag))
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig(m)
	if urls := c.StringSlice(urlFlag); len(urls) > 0 {
		cfg.URLs = urls
	}
	if lang := c.String(langFlag); lang != "" {
		cfg.Lang = lang
	}
	if h := c.String(cloudflareHostFlag); h != "" {
		cfg.CloudflareHost = h
	}
	return cfg, nil
}

func (cfg Config) normalize() (Config, error) {
	var urls []string
	for _, u := range cfg.URLs {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return Config{}, ErrNoURLs
	}
	lang := strings.TrimSpace(cfg.Lang)
	if lang == "" {
		lang = LangEnglish
	}
	if _, err := language.Parse(lang); err != nil {
		return Config{}, errors.Wrapf(err, "invalid language %q", lang)
	}
	host := strings.TrimSpace(cfg.CloudflareHost)
	if host == "" {
		host = defaultCloudflareHost
	}
	m := cfg.Manifest
	if m == nil {
		var err error
		m, err = ParseManifest(defaultManifest)
		if err != nil {
			return Config{}, err
		}
	} else if _, ok := idFields[m.UniqueID]; !ok {
		return Config{}, errors.Errorf("manifest unique_id %q is not an item field", m.UniqueID)
	}
	return Config{
		URLs:           urls,
		Lang:           lang,
		CloudflareHost: host,
		Manifest:       m,
	}, nil
}
