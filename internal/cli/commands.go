package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// BuildVersion is set at link time.
var BuildVersion = "n/a"

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <codepoint>...",
		Short: "Print the value of each code point",
		Long: `Print the value of each code point.

Code points are given as U+0041, 0x41, bare hex digits (41) or a single
character. A single character that is also a hex digit is read as hex, so
"a" means U+000A; write U+0061 for the letter.`,
		Example: "  runemap get U+0041 0x3B1 -p sc\n  runemap get 世 U+0061",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codePoints := make([]rune, len(args))
			for i, arg := range args {
				c, err := parseCodePoint(arg)
				if err != nil {
					return err
				}
				codePoints[i] = c
			}

			m, err := loadMap(cmd)
			if err != nil {
				return err
			}
			for _, c := range codePoints {
				v, ok, err := m.Get(c)
				if err != nil {
					return err
				}
				if !ok {
					v = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "U+%04X\t%s\n", c, v)
			}
			return nil
		},
	}
}

func newRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List every run of the loaded property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadMap(cmd)
			if err != nil {
				return err
			}
			rows := make([]rangeRow, 0, m.RunCount())
			for run := range m.Runs() {
				rows = append(rows, newRangeRow(run.Lo, run.Hi, run.Value, run.Mapped))
			}
			return writeRows(cmd, rows)
		},
	}
	registerOutputFlag(cmd)
	return cmd
}

func newSetOfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set-of <value>",
		Short:   "List the code point ranges holding a value",
		Example: "  runemap set-of Nd\n  runemap set-of Greek -p sc -o yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(cmd)
			if err != nil {
				return err
			}
			var rows []rangeRow
			for rg := range m.ValuesEquivalentTo(args[0]).Ranges() {
				rows = append(rows, newRangeRow(rg.Lo, rg.Hi, args[0], true))
			}
			if len(rows) == 0 {
				return fmt.Errorf("no code point has value %q", args[0])
			}
			return writeRows(cmd, rows)
		},
	}
	registerOutputFlag(cmd)
	return cmd
}

func newValuesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "values",
		Short: "Print the distinct values of the loaded property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadMap(cmd)
			if err != nil {
				return err
			}
			for _, v := range m.DistinctValues() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of runemap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version := BuildVersion
			if info, ok := debug.ReadBuildInfo(); ok && version == "n/a" {
				version = info.Main.Version
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
