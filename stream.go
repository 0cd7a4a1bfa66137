package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	ma "github.com/webtor-io/movie-api-provider/services/movie_api"
)

const (
	langFlag    = "lang"
	qualityFlag = "quality"
)

func makeStreamCMD() cli.Command {
	streamCMD := cli.Command{
		Name:    "stream",
		Aliases: []string{"st"},
		Usage:   "Resolves torrent for movie",
		Action:  stream,
	}
	streamCMD.Flags = append(streamCMD.Flags,
		cli.StringFlag{
			Name:  idFlag,
			Usage: "imdb id",
		},
		cli.StringFlag{
			Name:  langFlag,
			Usage: "torrent language (defaults to movie api language)",
		},
		cli.StringFlag{
			Name:  qualityFlag,
			Usage: "torrent quality, none picks the first available",
			Value: ma.QualityNone,
		},
		cli.BoolFlag{
			Name:  jsonFlag,
			Usage: "print json",
		},
	)
	streamCMD.Flags = configureProvider(streamCMD.Flags)
	return streamCMD
}

func stream(c *cli.Context) error {
	id := c.String(idFlag)
	if id == "" {
		return errors.New("id is required")
	}
	api, err := makeProvider(c, nil)
	if err != nil {
		return err
	}
	it, err := api.Detail(context.Background(), id, nil)
	if err != nil {
		return err
	}
	t, err := api.ResolveStream(ma.Filters{
		Lang:    c.String(langFlag),
		Quality: c.String(qualityFlag),
	}, it)
	if err != nil {
		return err
	}
	if c.Bool(jsonFlag) {
		return printJSON(c, t)
	}
	_, err = fmt.Fprintln(c.App.Writer, renderTorrent(t))
	return err
}

func renderTorrent(t *ma.Torrent) string {
	size := t.Filesize
	if t.Size > 0 {
		size = humanize.Bytes(uint64(t.Size))
	}
	return renderTable(torrentColumns, [][]string{
		{"URL", t.URL},
		{"Provider", t.Provider},
		{"Seeds", strconv.Itoa(t.Seed)},
		{"Peers", strconv.Itoa(t.Peer)},
		{"Size", size},
	})
}
