package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/joshuapare/rcolkit/internal/mmfile"
	"github.com/joshuapare/rcolkit/internal/writer"
	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/rcol"
	"github.com/joshuapare/rcolkit/rcol/chunks/stbl"
	"github.com/joshuapare/rcolkit/rcol/chunks/vpxy"
)

// loadContainer maps path and decodes it with the configured options. The
// container copies what it needs, so the mapping is released on return.
func loadContainer(path string) (*rcol.Container, int, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, 0, err
	}

	printVerbose("Opening container: %s\n", path)
	var (
		c    *rcol.Container
		size int
	)
	err = mmfile.ReadFile(path, func(data []byte) error {
		size = len(data)
		var perr error
		c, perr = rcol.Parse(data, opts)
		return perr
	})
	if err != nil {
		logger.Debug("decode failed", zap.String("path", path), zap.Error(err))
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.Debug("decoded container",
		zap.String("path", path),
		zap.Int("size", size),
		zap.Int("chunks", c.Chunks().Len()),
		zap.Int("resource_keys", c.ResourceKeys().Len()),
	)
	return c, size, nil
}

// sinkFor returns a file sink for a non-empty path, stdout otherwise.
func sinkFor(path string) writer.Sink {
	if path == "" || path == "-" {
		return writer.StreamWriter{W: os.Stdout}
	}
	return &writer.FileWriter{Path: path}
}

// chunkInfo describes one chunk entry for listings.
type chunkInfo struct {
	Index     int    `json:"index"`
	Key       string `json:"key"`
	Codec     string `json:"codec"`
	Size      int    `json:"size"`
	Signature string `json:"signature,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

func describeChunk(i int, e *rcol.ChunkEntry) (chunkInfo, error) {
	info := chunkInfo{Index: i, Key: e.Key().String()}
	body, err := codec.Marshal(e.Block())
	if err != nil {
		return info, fmt.Errorf("chunk %d %s: %w", i, e.Key(), err)
	}
	info.Size = len(body)

	switch b := e.Block().(type) {
	case *vpxy.VPXY:
		info.Codec = "vpxy"
		info.Detail = fmt.Sprintf("%d entries, %d keys", b.Entries().Len(), b.Keys().Len())
	case *stbl.Table:
		info.Codec = "stbl"
		info.Detail = fmt.Sprintf("%d strings", b.Entries().Len())
	case *rcol.OpaqueChunk:
		info.Codec = "opaque"
		info.Signature = b.Signature()
	default:
		info.Codec = fmt.Sprintf("%T", b)
	}
	return info, nil
}
