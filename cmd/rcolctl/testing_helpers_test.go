package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/rcol"
	"github.com/joshuapare/rcolkit/rcol/chunks/stbl"
	"github.com/joshuapare/rcolkit/rcol/chunks/vpxy"
)

var (
	fixtureVPXYKey   = tgi.New(vpxy.Tag, 0, 1)
	fixtureSTBLKey   = tgi.New(stbl.Tag, 0, 2)
	fixtureOpaqueKey = tgi.New(0x01661233, 0, 3)
	fixtureResource  = tgi.New(0x015A1849, 0, 0x1234)
)

// resetGlobals restores flag and config state between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut, strict = false, false, false, false
	configPath = ""
	chunksType, extractOutput, roundtripOutput, storeGetOutput = "", "", "", ""
	storeTimeout = 0
	cfg = defaultConfig()
	cfg.Store.Backend = "bolt"
	cfg.Store.BoltPath = filepath.Join(t.TempDir(), "store.db")
	logger = zap.NewNop()
}

// writeFixture builds a container with a vpxy, an stbl and an opaque chunk
// and writes it to a temp file.
func writeFixture(t *testing.T) string {
	t.Helper()
	c := rcol.New(nil)

	v := vpxy.New().(*vpxy.VPXY)
	if err := v.Keys().Append(fixtureResource); err != nil {
		t.Fatalf("vpxy key: %v", err)
	}
	if err := v.Entries().Append(vpxy.NewSingleEntry(0)); err != nil {
		t.Fatalf("vpxy entry: %v", err)
	}
	s := stbl.New().(*stbl.Table)
	if err := s.Put(0xCAFE, "Sofa"); err != nil {
		t.Fatalf("stbl put: %v", err)
	}

	for _, add := range []struct {
		key   tgi.Key
		block rcol.Chunk
	}{
		{fixtureVPXYKey, v},
		{fixtureSTBLKey, s},
		{fixtureOpaqueKey, rcol.NewOpaqueChunk([]byte("MODL\x00\x01\x02"))},
	} {
		if _, err := c.AddChunk(add.key, add.block); err != nil {
			t.Fatalf("add chunk: %v", err)
		}
	}
	if err := c.ResourceKeys().Append(fixtureResource); err != nil {
		t.Fatalf("resource key: %v", err)
	}

	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.rcol")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	out := <-done
	return string(out), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
