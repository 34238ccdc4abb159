package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/HuynhNguyenPhuc/laurel/pkg/renderer"
)

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Pixels", "Tiles", "Workers", "Slowest tile", "Fastest tile"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%s", stats.SlowestTile),
		fmt.Sprintf("%s", stats.FastestTile),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", fmt.Sprintf("%s", stats.Duration)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
