package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtree/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes and the scene files found in the
// scene directory.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	files, err := scene.ListSceneFiles(ctx.String("dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Source", "Description"})
	for _, info := range scene.Builtins() {
		table.Append([]string{info.Name, "built-in", info.Description})
	}
	for _, info := range files {
		table.Append([]string{info.Name, info.Path, info.Description})
	}
	table.Render()

	_, err = fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}
