package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/robotlex/format"
	"github.com/dhamidi/robotlex/robot/lexer"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			data, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			enc, err := format.ByName(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			doc := &format.Document{Stream: lexer.TokenizeFile(data, args[0])}
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
