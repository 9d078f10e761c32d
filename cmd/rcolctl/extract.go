package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
)

var extractOutput string

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write the body to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file> <key>",
		Short: "Write one chunk body",
		Long: `The extract command encodes the chunk with the given key and writes its
body. Opaque chunks come out byte for byte as stored.

Example:
  rcolctl extract model.rcol 0x736884F1-0x00000000-0x0000000000000001 -o vpxy.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	key, err := tgi.Parse(args[1])
	if err != nil {
		return err
	}
	c, _, err := loadContainer(args[0])
	if err != nil {
		return err
	}
	e, err := c.Find(key)
	if err != nil {
		return err
	}
	body, err := codec.Marshal(e.Block())
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := sinkFor(extractOutput).Emit(body); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	logger.Info("extracted chunk", zap.Stringer("key", key), zap.Int("size", len(body)), zap.String("output", extractOutput))
	return nil
}
