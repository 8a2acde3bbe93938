package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/runemap"
)

const (
	FlagLogLevel  = "loglevel"
	FlagLogFormat = "logformat"
)

func registerLoggingFlags(flags *pflag.FlagSet) {
	flags.String(FlagLogLevel, "warn", "set the log level (debug, info, warn, error)")
	flags.String(FlagLogFormat, "text", "set the log format (text, json)")
}

// getLogger builds a logger writing to the command's error stream so that
// logs never mix with query output.
func getLogger(cmd *cobra.Command) (*runemap.Logger, error) {
	level, err := getLogLevel(cmd)
	if err != nil {
		return nil, err
	}

	format, err := cmd.Flags().GetString(FlagLogFormat)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	return runemap.NewLogger(handler), nil
}

func getLogLevel(cmd *cobra.Command) (slog.Level, error) {
	logLevel, err := cmd.Flags().GetString(FlagLogLevel)
	if err != nil {
		return slog.LevelWarn, err
	}
	switch logLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", logLevel)
	}
}
