package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/runemap"
	"github.com/hupe1980/runemap/ucd"
)

const (
	FlagProperty        = "property"
	FlagCheckInvariants = "check-invariants"
)

// New returns the root command of the runemap binary.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runemap",
		Short: "Query Unicode properties stored as code point run maps",
		Long: `runemap loads a Unicode property for every code point into an inversion map
and answers lookups, run listings and value extractions against it.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			property, err := cmd.Flags().GetString(FlagProperty)
			if err != nil {
				return err
			}
			if !slices.Contains(ucd.Properties(), property) {
				return fmt.Errorf("invalid property %q, must be one of %s", property, strings.Join(ucd.Properties(), ", "))
			}
			_, err = getLogger(cmd)
			return err
		},
	}

	cmd.PersistentFlags().StringP(FlagProperty, "p", ucd.GeneralCategory,
		fmt.Sprintf("property to load (%s)", strings.Join(ucd.Properties(), ", ")))
	cmd.PersistentFlags().Bool(FlagCheckInvariants, false, "verify the map structure after every mutation")
	registerLoggingFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGetCommand(),
		newRunsCommand(),
		newSetOfCommand(),
		newValuesCommand(),
		newVersionCommand(),
	)
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	return New().ExecuteContext(ctx)
}

// loadMap builds the map for the selected property using the log and debug
// settings of cmd.
func loadMap(cmd *cobra.Command) (*runemap.Map[string], error) {
	property, err := cmd.Flags().GetString(FlagProperty)
	if err != nil {
		return nil, err
	}
	check, err := cmd.Flags().GetBool(FlagCheckInvariants)
	if err != nil {
		return nil, err
	}
	logger, err := getLogger(cmd)
	if err != nil {
		return nil, err
	}

	m, err := ucd.Load(property,
		runemap.WithLogger(logger),
		runemap.WithInvariantChecks(check),
	)
	if err != nil {
		return nil, fmt.Errorf("loading property %s: %w", property, err)
	}
	logger.Debug("property loaded", "property", property, "runs", m.RunCount())
	return m, nil
}
