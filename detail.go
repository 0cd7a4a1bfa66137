package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const idFlag = "id"

func makeDetailCMD() cli.Command {
	detailCMD := cli.Command{
		Name:    "detail",
		Aliases: []string{"d"},
		Usage:   "Shows movie details",
		Action:  detail,
	}
	detailCMD.Flags = append(detailCMD.Flags,
		cli.StringFlag{
			Name:  idFlag,
			Usage: "imdb id",
		},
	)
	detailCMD.Flags = configureProvider(detailCMD.Flags)
	return detailCMD
}

func detail(c *cli.Context) error {
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
	return printJSON(c, it)
}

func makeRandomCMD() cli.Command {
	randomCMD := cli.Command{
		Name:    "random",
		Aliases: []string{"r"},
		Usage:   "Shows random movie",
		Action:  random,
	}
	randomCMD.Flags = configureProvider(randomCMD.Flags)
	return randomCMD
}

func random(c *cli.Context) error {
	api, err := makeProvider(c, nil)
	if err != nil {
		return err
	}
	it, err := api.Random(context.Background())
	if err != nil {
		return err
	}
	return printJSON(c, it)
}
