package main

import (
	"github.com/urfave/cli"
)

func makeManifestCMD() cli.Command {
	manifestCMD := cli.Command{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Prints provider manifest",
		Action:  manifest,
	}
	manifestCMD.Flags = configureProvider(manifestCMD.Flags)
	return manifestCMD
}

func manifest(c *cli.Context) error {
	api, err := makeProvider(c, nil)
	if err != nil {
		return err
	}
	return printJSON(c, api.Manifest())
}
