package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"procdsl/src/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and grammar version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetBuildInfo()
			fmt.Printf("dslc %s (grammar v%s)\n", info["version"], info["grammar_version"])
			fmt.Printf("  commit:     %s\n", info["git_commit"])
			fmt.Printf("  built:      %s\n", info["build_time"])
			fmt.Printf("  go version: %s\n", info["go_version"])
			fmt.Printf("  platform:   %s\n", info["platform"])
			return nil
		},
	}
}
