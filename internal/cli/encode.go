package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const (
	FlagOutput      = "output"
	FlagOutputShort = "o"

	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// rangeRow is one output line of the runs and set-of commands.
type rangeRow struct {
	Lo     string `json:"lo"`
	Hi     string `json:"hi"`
	Size   int    `json:"size"`
	Value  string `json:"value,omitempty"`
	Mapped bool   `json:"mapped"`
}

func newRangeRow(lo, hi rune, value string, mapped bool) rangeRow {
	return rangeRow{
		Lo:     fmt.Sprintf("U+%04X", lo),
		Hi:     fmt.Sprintf("U+%04X", hi),
		Size:   int(hi-lo) + 1,
		Value:  value,
		Mapped: mapped,
	}
}

func registerOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagOutput, FlagOutputShort, OutputTable, "output format (table, json, yaml)")
}

func writeRows(cmd *cobra.Command, rows []rangeRow) error {
	output, err := cmd.Flags().GetString(FlagOutput)
	if err != nil {
		return err
	}

	var data []byte
	switch output {
	case OutputJSON:
		data, err = json.MarshalIndent(rows, "", "  ")
		data = append(data, '\n')
	case OutputYAML:
		data, err = yaml.Marshal(rows)
	case OutputTable:
		data, err = encodeRowsAsTable(rows)
	default:
		return fmt.Errorf("invalid output format: %s", output)
	}
	if err != nil {
		return fmt.Errorf("encoding %s output failed: %w", output, err)
	}

	_, err = io.Copy(cmd.OutOrStdout(), bytes.NewReader(data))
	return err
}

func encodeRowsAsTable(rows []rangeRow) ([]byte, error) {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"From", "To", "Size", "Value"})
	for _, r := range rows {
		value := r.Value
		if !r.Mapped {
			value = "-"
		}
		t.AppendRow(table.Row{r.Lo, r.Hi, r.Size, value})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, AutoMerge: true},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes(), nil
}
