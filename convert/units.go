package convert

import (
	"encoding/json"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/juration/response"
	"github.com/nmeilick/juration/units"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// UnitsCommand returns the CLI command listing the unit table
func UnitsCommand() *cli.Command {
	return &cli.Command{
		Name:  "units",
		Usage: "List the recognized units, their patterns and display forms",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Print the table as JSON",
			},
		},
		Action: runUnits,
	}
}

func runUnits(c *cli.Context) error {
	out := writer(c)

	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(response.NewUnits())
	}

	header := []string{"Unit", "Seconds", "Patterns"}
	for _, f := range units.Formats() {
		header = append(header, f.String())
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)

	for _, u := range units.All() {
		row := []string{
			u.Name,
			humanize.Comma(u.Scale),
			strings.Join(u.Patterns, " "),
		}
		for _, f := range units.Formats() {
			row = append(row, quote(u.Form(f)))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// quote makes empty display forms visible in the table
func quote(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
