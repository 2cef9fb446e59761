package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/robotlex/config"
)

const version = "0.1.0"

type globalOptions struct {
	configPath string
	verbose    int
	logFile    string
}

var globals globalOptions

func main() {
	rootCmd := &cobra.Command{
		Use:          "robotlex",
		Short:        "Tokenize and classify Robot Framework test data",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globals.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().CountVarP(&globals.verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&globals.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newContextsCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, applies the global flags on top
// of it and configures logging.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if globals.configPath != "" {
		var err error
		cfg, err = config.Load(globals.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if globals.verbose > 0 {
		cfg.Log.Verbosity = globals.verbose
	}
	if globals.logFile != "" {
		cfg.Log.File = globals.logFile
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	return cfg, nil
}

// readInput reads a file, or standard input for "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
