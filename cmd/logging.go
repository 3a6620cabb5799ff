package cmd

import (
	"github.com/df07/go-pathtree/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtree")

// setupLogging applies --log-level, then lets -v and -vv raise verbosity.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalIsSet("log-level") {
		level, err := log.ParseLevel(ctx.GlobalString("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}
