package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	serveCMD := makeServeCMD()
	searchCMD := makeSearchCMD()
	detailCMD := makeDetailCMD()
	randomCMD := makeRandomCMD()
	streamCMD := makeStreamCMD()
	manifestCMD := makeManifestCMD()
	app.Commands = []cli.Command{serveCMD, searchCMD, detailCMD, randomCMD, streamCMD, manifestCMD}
}
