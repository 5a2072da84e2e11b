package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lupppig/dchunk/fastcdc"
	"github.com/lupppig/dchunk/internal/config"
)

// parseSeed accepts decimal or 0x-prefixed hexadecimal seeds. An empty
// string falls back to the configured default, then to zero.
func parseSeed(s string) (uint64, error) {
	if s == "" {
		s = config.GetConfig().Seed
	}
	if s == "" {
		return 0, nil
	}
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

// loadTable reads a JSON gear table from path. An empty path falls back to
// the configured table file, then to the built-in default table.
func loadTable(path string) (*fastcdc.Table, error) {
	if path == "" {
		path = config.GetConfig().TableFile
	}
	if path == "" {
		return &fastcdc.DefaultTable, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gear table: %w", err)
	}

	var table fastcdc.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse gear table %s: %w", path, err)
	}
	return &table, nil
}

// openInput opens a file argument, treating "-" as stdin. The returned
// size is -1 when unknown.
func openInput(arg string) (io.ReadCloser, string, int64, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), "stdin", -1, nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, "", 0, err
	}

	size := int64(-1)
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
		size = info.Size()
	}
	return f, arg, size, nil
}
