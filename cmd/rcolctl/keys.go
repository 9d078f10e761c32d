package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List the external resource keys of a container",
		Long: `The keys command lists the resource key table: the keys of other
resources that chunks in this container refer to by index.

Example:
  rcolctl keys model.rcol
  rcolctl keys model.rcol --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	path := args[0]
	c, _, err := loadContainer(path)
	if err != nil {
		return err
	}
	keys := c.ResourceKeys().Items()

	if jsonOut {
		result := map[string]any{
			"file":  path,
			"keys":  keys,
			"count": len(keys),
		}
		return printJSON(result)
	}

	printInfo("\nResource keys in %s:\n", path)
	for i, k := range keys {
		printInfo("  [%d] %s\n", i, k)
	}
	printInfo("\nTotal: %d keys\n", len(keys))
	return nil
}
