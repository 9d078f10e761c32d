package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rcolkit/rcol"
	"github.com/joshuapare/rcolkit/rcol/chunks/stbl"
	"github.com/joshuapare/rcolkit/rcol/chunks/vpxy"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var codecNames = map[uint32]string{
	vpxy.Tag: "vpxy",
	stbl.Tag: "stbl",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and codec information",
	Long: `The version command prints the build version together with the chunk
codecs compiled into this binary and the effective parse settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

type codecInfo struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type versionInfo struct {
	Version  string      `json:"version"`
	Commit   string      `json:"commit"`
	Built    string      `json:"built"`
	Codecs   []codecInfo `json:"codecs"`
	Fallback bool        `json:"opaque_fallback"`
	Mode     string      `json:"mode"`
	KeyOrder string      `json:"key_order"`
}

func runVersion() error {
	reg := rcol.DefaultRegistry()
	info := versionInfo{
		Version:  version,
		Commit:   commit,
		Built:    date,
		Fallback: reg.HasDefault(),
		Mode:     cfg.Parse.Mode,
		KeyOrder: cfg.Parse.KeyOrder,
	}
	for _, tag := range reg.Tags() {
		name, ok := codecNames[tag]
		if !ok {
			name = "unnamed"
		}
		info.Codecs = append(info.Codecs, codecInfo{Tag: fmt.Sprintf("0x%08X", tag), Name: name})
	}

	if jsonOut {
		return printJSON(info)
	}

	fmt.Printf("rcolctl %s\n", info.Version)
	fmt.Printf("  commit: %s\n", info.Commit)
	fmt.Printf("  built: %s\n", info.Built)
	fmt.Printf("  parse mode: %s, key order: %s\n", info.Mode, info.KeyOrder)
	fmt.Printf("  codecs:\n")
	for _, c := range info.Codecs {
		fmt.Printf("    %s %s\n", c.Tag, c.Name)
	}
	if info.Fallback {
		fmt.Printf("    * opaque\n")
	}
	return nil
}
