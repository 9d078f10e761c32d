package main

import (
	"github.com/spf13/cobra"
)

var chunksType string

func init() {
	cmd := newChunksCmd()
	cmd.Flags().StringVarP(&chunksType, "type", "t", "", "Only list chunks whose tag matches (hex)")
	rootCmd.AddCommand(cmd)
}

func newChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <file>",
		Short: "List the chunks of a container",
		Long: `The chunks command lists every chunk with its key, the codec that
decoded it, and its encoded size.

Example:
  rcolctl chunks model.rcol
  rcolctl chunks model.rcol --type 0x736884F1
  rcolctl chunks model.rcol --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChunks(args)
		},
	}
	return cmd
}

func runChunks(args []string) error {
	path := args[0]
	c, _, err := loadContainer(path)
	if err != nil {
		return err
	}

	var filter []uint32
	if chunksType != "" {
		if filter, err = parseTags(chunksType); err != nil {
			return err
		}
	}

	var out []chunkInfo
	for i, e := range c.Chunks().All() {
		if len(filter) > 0 && e.Key().Type != filter[0] {
			continue
		}
		ci, err := describeChunk(i, e)
		if err != nil {
			return err
		}
		out = append(out, ci)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":   path,
			"chunks": out,
			"count":  len(out),
		})
	}

	printInfo("\nChunks in %s:\n", path)
	for _, ci := range out {
		printInfo("  [%d] %s  %-6s %6d bytes", ci.Index, ci.Key, ci.Codec, ci.Size)
		if ci.Signature != "" {
			printInfo("  %q", ci.Signature)
		}
		if ci.Detail != "" {
			printInfo("  (%s)", ci.Detail)
		}
		printInfo("\n")
	}
	printInfo("\nTotal: %d chunks\n", len(out))
	return nil
}
