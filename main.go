package main

import (
	"os"

	"github.com/df07/go-pathtree/cmd"
	"github.com/df07/go-pathtree/pkg/config"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtree"
	app.Usage = "render scenes by tracing importance-weighted path trees"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "notice",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG file",
			Description: `
Trace every pixel of a built-in scene or a TOML scene file and write the
normalized, gamma corrected result as a PNG image. Settings come from the
defaults, then the optional configuration file, then the command line flags.
` + config.Help,
			Flags:  cmd.RenderFlags,
			Action: cmd.Render,
		},
		{
			Name:   "config",
			Usage:  "print the default configuration",
			Action: cmd.PrintConfig,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for TOML scene files",
				},
			},
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
