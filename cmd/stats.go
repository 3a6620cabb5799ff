package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtree/pkg/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayRenderStats(stats renderer.Stats) {
	var buf bytes.Buffer
	writeRenderStats(&buf, stats)
	logger.Noticef("render statistics\n%s", buf.String())
}

func writeRenderStats(buf *bytes.Buffer, stats renderer.Stats) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Block", "Rows", "Rays", "Nodes", "Peak nodes", "Aborted", "Escaped", "Shadow rays", "Occluded", "Render time", "Rays/s"})
	for _, block := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d", block.Block.Index),
			fmt.Sprintf("%d-%d", block.Block.Start, block.Block.End-1),
			fmt.Sprintf("%d", block.Rays),
			fmt.Sprintf("%d", block.Trace.Nodes),
			fmt.Sprintf("%d", block.Trace.PeakLive),
			fmt.Sprintf("%d", block.Trace.Aborted),
			fmt.Sprintf("%d", block.Trace.Escaped),
			fmt.Sprintf("%d", block.Trace.ShadowRays),
			fmt.Sprintf("%d", block.Trace.Occluded),
			block.Duration.String(),
			fmt.Sprintf("%.0f", block.RaysPerSecond()),
		})
	}
	table.SetFooter([]string{
		"", "TOTAL",
		fmt.Sprintf("%d", stats.Rays),
		fmt.Sprintf("%d", stats.Total.Nodes),
		fmt.Sprintf("%d", stats.Total.PeakLive),
		fmt.Sprintf("%d", stats.Total.Aborted),
		fmt.Sprintf("%d", stats.Total.Escaped),
		fmt.Sprintf("%d", stats.Total.ShadowRays),
		fmt.Sprintf("%d", stats.Total.Occluded),
		stats.Duration.String(),
		"",
	})

	table.Render()
}
