// Command dslc is the command-line front end for the process definition
// compiler: it owns flag parsing, file I/O and diagnostic rendering,
// and delegates every compilation decision to the compiler package
// (spec §1 Out of scope, §6 CLI surface).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procdsl/src/core/config"
	"procdsl/src/core/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dslc",
		Short:         "Compile process definitions to BPMN 2.0 XML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	root.AddCommand(newConvertCmd(), newValidateCmd(), newInfoCmd(), newVersionCmd())
	return root
}

func loadConfig() *config.Config {
	if configPath == "" {
		return config.Default()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config %q, using defaults: %v\n", configPath, err)
		return config.Default()
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to initialize logger: %v\n", err)
	}
}
