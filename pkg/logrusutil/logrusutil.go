// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package logrusutil

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// AddGlobalFlags registers --debug, --log-level and --log-format.
func AddGlobalFlags(flags *pflag.FlagSet) {
	flags.String("log-level", "", "Set the logging level [trace, debug, info, warn, error]")
	flags.String("log-format", "text", "Set the logging format [text, json]")
	flags.Bool("debug", false, "Debug mode")
}

// ProcessGlobalFlags applies the flags registered by AddGlobalFlags to logger.
// --log-level overrides --debug.
func ProcessGlobalFlags(logger *logrus.Logger, flags *pflag.FlagSet) error {
	debug, _ := flags.GetBool("debug")
	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("log-format")
	return Configure(logger, debug, level, format)
}

// Configure sets the level and the formatter of logger.
func Configure(logger *logrus.Logger, debug bool, level, format string) error {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logger.SetLevel(lvl)
	}
	switch format {
	case "json":
		logger.SetFormatter(new(logrus.JSONFormatter))
	case "text", "":
		// logrus use text format by default.
		if runtime.GOOS == "windows" && isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			formatter := new(logrus.TextFormatter)
			// the default setting does not recognize cygwin on windows
			formatter.ForceColors = true
			logger.SetFormatter(formatter)
		}
	default:
		return fmt.Errorf("unsupported log-format: %q", format)
	}
	return nil
}
