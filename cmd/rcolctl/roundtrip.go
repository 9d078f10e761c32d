package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/rcolkit/internal/mmfile"
	"github.com/joshuapare/rcolkit/rcol"
)

var roundtripOutput string

// errRoundTrip is returned when the re-encoded container decodes to a
// different structure.
var errRoundTrip = errors.New("round trip changed the container")

func init() {
	cmd := newRoundtripCmd()
	cmd.Flags().StringVarP(&roundtripOutput, "output", "o", "", "Write the re-encoded container to this file")
	rootCmd.AddCommand(cmd)
}

func newRoundtripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Decode, re-encode and compare a container",
		Long: `The roundtrip command decodes a container, forces a full re-encode,
decodes the result again and compares both structures. It also reports
whether the re-encoded bytes are identical to the input; layouts that pad
differently still round trip structurally.

Example:
  rcolctl roundtrip model.rcol
  rcolctl roundtrip model.rcol -o normalized.rcol`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(args)
		},
	}
	return cmd
}

type roundtripResult struct {
	File       string `json:"file"`
	InputSize  int    `json:"input_size"`
	OutputSize int    `json:"output_size"`
	Identical  bool   `json:"identical"`
	Equal      bool   `json:"equal"`
}

func runRoundtrip(args []string) error {
	path := args[0]
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	var (
		res roundtripResult
		out []byte
	)
	res.File = path
	err = mmfile.ReadFile(path, func(data []byte) error {
		c, err := rcol.Parse(data, opts)
		if err != nil {
			return err
		}
		if out, err = c.Unparse(); err != nil {
			return err
		}
		again, err := rcol.Parse(out, opts)
		if err != nil {
			return fmt.Errorf("re-decode: %w", err)
		}
		res.InputSize = len(data)
		res.OutputSize = len(out)
		res.Identical = bytes.Equal(data, out)
		res.Equal = c.Equal(again)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to round trip %s: %w", path, err)
	}
	logger.Debug("round trip",
		zap.String("path", path),
		zap.Bool("identical", res.Identical),
		zap.Bool("equal", res.Equal),
	)

	if roundtripOutput != "" {
		if err := sinkFor(roundtripOutput).Emit(out); err != nil {
			return err
		}
		printVerbose("Wrote %s\n", roundtripOutput)
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("\nRound trip of %s:\n", path)
		printInfo("  Input: %s\n", formatSize(res.InputSize))
		printInfo("  Output: %s\n", formatSize(res.OutputSize))
		printInfo("  Byte-identical: %t\n", res.Identical)
		printInfo("  Structurally equal: %t\n", res.Equal)
	}
	if !res.Equal {
		return errRoundTrip
	}
	return nil
}
