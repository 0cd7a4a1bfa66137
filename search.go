package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	ma "github.com/webtor-io/movie-api-provider/services/movie_api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	keywordsFlag = "keywords"
	genreFlag    = "genre"
	orderFlag    = "order"
	sorterFlag   = "sorter"
	pageFlag     = "page"
	jsonFlag     = "json"
	idsFlag      = "ids"
)

func makeSearchCMD() cli.Command {
	searchCMD := cli.Command{
		Name:    "search",
		Aliases: []string{"f"},
		Usage:   "Fetches one page of movies",
		Action:  search,
	}
	configureSearch(&searchCMD)
	return searchCMD
}

func configureSearch(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  keywordsFlag,
			Usage: "search keywords",
		},
		cli.StringFlag{
			Name:  genreFlag,
			Usage: "genre filter",
		},
		cli.IntFlag{
			Name:  orderFlag,
			Usage: "sort order (1 or -1)",
		},
		cli.StringFlag{
			Name:  sorterFlag,
			Usage: "sorter",
			Value: ma.SorterPopularity,
		},
		cli.IntFlag{
			Name:  pageFlag,
			Usage: "page number",
			Value: 1,
		},
		cli.BoolFlag{
			Name:  jsonFlag,
			Usage: "print json instead of table",
		},
		cli.BoolFlag{
			Name:  idsFlag,
			Usage: "print only movie ids",
		},
	)
	c.Flags = configureProvider(c.Flags)
}

func search(c *cli.Context) error {
	api, err := makeProvider(c, nil)
	if err != nil {
		return err
	}
	f := ma.Filters{
		Keywords: c.String(keywordsFlag),
		Genre:    c.String(genreFlag),
		Order:    c.Int(orderFlag),
		Sorter:   c.String(sorterFlag),
		Page:     c.Int(pageFlag),
	}
	warnUnknownFilters(api.Manifest(), f)

	res, err := api.Search(context.Background(), f)
	if err != nil {
		return err
	}
	if c.Bool(idsFlag) {
		_, err = fmt.Fprintln(c.App.Writer, strings.Join(api.ExtractIDs(res), "\n"))
		return err
	}
	if c.Bool(jsonFlag) {
		return printJSON(c, res)
	}
	_, err = fmt.Fprintln(c.App.Writer, renderResults(res))
	return err
}

func warnUnknownFilters(m *ma.Manifest, f ma.Filters) {
	if f.Genre != "" && !m.Filters.Genres.Has(f.Genre) {
		log.WithField("genre", f.Genre).Warn("genre is not listed in manifest")
	}
	if f.Sorter != "" && !m.Filters.Sorters.Has(f.Sorter) {
		log.WithField("sorter", f.Sorter).Warn("sorter is not listed in manifest")
	}
}

func renderResults(res *ma.FetchResult) string {
	title := cases.Title(language.Und)
	rows := make([][]string, 0, len(res.Results))
	for _, it := range res.Results {
		genres := make([]string, 0, len(it.Genres))
		for _, g := range it.Genres {
			genres = append(genres, title.String(g))
		}
		rows = append(rows, []string{
			it.ImdbID,
			it.Title,
			it.Year,
			strconv.FormatFloat(it.Rating, 'f', 1, 64),
			strings.Join(genres, ", "),
			strings.Join(it.Torrents.Keys(), " "),
		})
	}
	return renderTable(resultColumns, rows)
}
