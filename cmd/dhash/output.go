package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cetra3/dhash"
	"github.com/cetra3/dhash/internal/config"
)

// imageReport describes one hashed image.
type imageReport struct {
	Path      string          `json:"path"`
	Signature dhash.Signature `json:"signature"`
}

// report is the result of a CLI run. Distance and Similar are only present
// when two images were given.
type report struct {
	Images   []imageReport `json:"images"`
	Distance *int          `json:"distance,omitempty"`
	Similar  *bool         `json:"similar,omitempty"`
}

// formatSignature renders a signature according to the configured output
// format.
func formatSignature(signature dhash.Signature, cfg config.Config) string {
	if cfg.Output == "hex" {
		return signature.Hex()
	}
	return signature.String()
}

// writePlain prints the report in the classic line-per-image format.
func writePlain(out io.Writer, rep *report, cfg config.Config) {
	for _, img := range rep.Images {
		fmt.Fprintf(out, "dhash for %s is `%s`\n", img.Path, formatSignature(img.Signature, cfg))
	}
	if rep.Distance != nil {
		fmt.Fprintf(out, "distance is: %d\n", *rep.Distance)
		if *rep.Similar {
			fmt.Fprintf(out, "images are similar (distance <= %d)\n", cfg.Threshold)
		} else {
			fmt.Fprintf(out, "images are different (distance > %d)\n", cfg.Threshold)
		}
	}
}

// writeJSON encodes the report as indented JSON. Signatures are included
// both as numbers and as hexadecimal strings.
func writeJSON(cmd *cobra.Command, rep *report) error {
	type jsonImage struct {
		Path      string          `json:"path"`
		Signature dhash.Signature `json:"signature"`
		Hex       string          `json:"hex"`
	}
	out := struct {
		Images   []jsonImage `json:"images"`
		Distance *int        `json:"distance,omitempty"`
		Similar  *bool       `json:"similar,omitempty"`
	}{
		Distance: rep.Distance,
		Similar:  rep.Similar,
	}
	for _, img := range rep.Images {
		out.Images = append(out.Images, jsonImage{
			Path:      img.Path,
			Signature: img.Signature,
			Hex:       img.Signature.Hex(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeTable prints the report as a rounded table followed by the distance
// summary.
func writeTable(out io.Writer, rep *report, cfg config.Config) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Image", "Signature"})
	for _, img := range rep.Images {
		tw.AppendRow(table.Row{img.Path, formatSignature(img.Signature, cfg)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(out, tw.Render())

	if rep.Distance != nil {
		verdict := "different"
		if *rep.Similar {
			verdict = "similar"
		}
		fmt.Fprintf(out, "distance %d, images are %s (threshold %d)\n",
			*rep.Distance, verdict, cfg.Threshold)
	}
}

// stdoutIsTerminal reports whether stdout is attached to a terminal. Table
// output degrades to plain lines when piped.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
