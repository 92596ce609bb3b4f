package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/contractfind/internal/model"
	"github.com/olekukonko/tablewriter"
)

// renderSummaryTable lays out one row per scanned code.
func renderSummaryTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Code", "Matches", "XML files", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, res := range summary.Results {
		table.Append([]string{
			res.Code,
			fmt.Sprintf("%d", res.Stats.Matches),
			fmt.Sprintf("%d", res.Stats.Considered),
			fmt.Sprintf("%d", res.Stats.ParseFailed+res.Stats.OtherFailed),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Codes %d", len(summary.Results)),
		fmt.Sprintf("%d", summary.TotalMatches()),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}
