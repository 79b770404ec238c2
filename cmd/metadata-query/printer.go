package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	emptyColor  = color.New(color.FgYellow)
)

// printTable writes rows as aligned columns under a highlighted header.
func printTable(out io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := emptyColor.Fprintln(out, "no results")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, headerColor.Sprint(strings.Join(headers, "\t"))); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(r, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
