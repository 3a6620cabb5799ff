package cmd

import (
	"github.com/df07/go-pathtree/pkg/config"
	"github.com/urfave/cli"
)

// PrintConfig writes the default configuration as TOML.
func PrintConfig(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	return config.Default().Encode(ctx.App.Writer)
}
