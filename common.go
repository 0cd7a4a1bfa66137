package main

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	ma "github.com/webtor-io/movie-api-provider/services/movie_api"
	"github.com/webtor-io/movie-api-provider/services/sanitize"
)

func configureProvider(f []cli.Flag) []cli.Flag {
	return ma.RegisterFlags(f)
}

func makeProvider(c *cli.Context, cl *http.Client) (*ma.Api, error) {
	api, err := ma.New(c, cl, sanitize.New())
	if err != nil {
		return nil, errors.Wrap(err, "failed to init movie api")
	}
	return api, nil
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
