package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/robotlex/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			builder, err := cfg.Builder()
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, builder)
			return server.RunStdio()
		},
	}
}
