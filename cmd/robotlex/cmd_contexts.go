package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/robotlex/format"
	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

func newContextsCmd() *cobra.Command {
	var outputFormat string
	var only []string

	cmd := &cobra.Command{
		Use:   "contexts <file>",
		Short: "Print the classified contexts of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(only) > 0 {
				cfg.Recognizers = only
			}
			builder, err := cfg.Builder()
			if err != nil {
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

			stream := lexer.TokenizeFile(data, args[0])
			doc := &format.Document{Stream: stream, Output: builder.Build(stream)}
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().StringSliceVarP(&only, "recognizer", "r", nil,
		fmt.Sprintf("run only these recognizers, in order (%v)", classify.RecognizerNames()))

	return cmd
}
