package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lupppig/dchunk/fastcdc"
	"github.com/lupppig/dchunk/internal/compress"
	"github.com/lupppig/dchunk/internal/config"
	"github.com/lupppig/dchunk/internal/logger"
	"github.com/lupppig/dchunk/internal/manifest"
	"github.com/lupppig/dchunk/internal/progress"
	"github.com/lupppig/dchunk/merkle"
	"github.com/spf13/cobra"
)

var (
	chunkAlgo        string
	chunkSeed        string
	chunkTable       string
	chunkManifest    string
	chunkOut         string
	chunkCompression string
	chunkProgress    bool
)

var chunkCmd = &cobra.Command{
	Use:   "chunk FILE",
	Short: "Split input into content-defined chunks and write a manifest",
	Long: `Split a file (or stdin, with "-") into content-defined chunks, hash every
chunk into a Merkle tree and write a manifest recording the chunk ranges,
their digests and the tree's root. With --out, chunk payloads are also
written to a directory, one file per chunk named by its digest, optionally
compressed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logger.FromContext(cmd.Context())

		algoName := chunkAlgo
		if algoName == "" {
			algoName = config.GetConfig().Algorithm
		}
		algo, err := merkle.LookupAlgorithm(algoName)
		if err != nil {
			return err
		}

		seed, err := parseSeed(chunkSeed)
		if err != nil {
			return err
		}
		table, err := loadTable(chunkTable)
		if err != nil {
			return err
		}

		compression := compress.Algorithm(chunkCompression)
		if chunkCompression == "" {
			compression = compress.Algorithm(config.GetConfig().Compression)
		}
		if chunkOut != "" {
			if err := os.MkdirAll(chunkOut, 0755); err != nil {
				return fmt.Errorf("create chunk dir: %w", err)
			}
		}

		in, source, size, err := openInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		var reader io.Reader = in
		var bars *mpbContainer
		if chunkProgress && size > 0 {
			bars = newMpbContainer(source, size)
			reader = progress.NewReader(in, bars.bar)
		}

		l.Info("Chunking started", "source", source, "algorithm", algo.Name())
		start := time.Now()

		m := manifest.New(source, algo.Name(), seed)
		m.Compression = string(compression)
		tree := merkle.NewWith(algo)

		chunker := fastcdc.NewChunker(reader, table, seed)
		var total int64
		for {
			chunk, err := chunker.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("chunk %s: %w", source, err)
			}

			tree.Append(chunk.Data)
			digest, err := tree.HexLeaf(tree.Len() - 1)
			if err != nil {
				return err
			}
			m.Chunks = append(m.Chunks, manifest.ChunkRef{
				Start:  chunk.Start,
				End:    chunk.End,
				Digest: digest,
			})
			total = int64(chunk.End)

			if chunkOut != "" {
				if err := writeChunk(chunkOut, digest, chunk.Data, compression); err != nil {
					return err
				}
			}
		}
		if bars != nil {
			bars.wait()
		}

		m.Size = total
		m.Root = tree.HexDigest()

		out := chunkManifest
		if out == "" {
			out = defaultManifestPath(source)
		}
		data, err := m.Serialize()
		if err != nil {
			return fmt.Errorf("serialize manifest: %w", err)
		}
		if out == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}

		l.Info("Chunking finished",
			"chunks", len(m.Chunks),
			"bytes", total,
			"root", m.Root,
			"manifest", out,
			"duration", time.Since(start).String(),
		)
		return nil
	},
}

// writeChunk stores one chunk payload under dir, named by its digest. An
// existing file is left alone: content-addressed names make rewrites
// pointless.
func writeChunk(dir, digest string, data []byte, algo compress.Algorithm) error {
	path := filepath.Join(dir, digest+compress.Ext(algo))
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chunk file: %w", err)
	}
	defer f.Close()

	w, err := compress.NewWriter(f, algo)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write chunk %s: %w", digest, err)
	}
	return w.Close()
}

func defaultManifestPath(source string) string {
	if source == "stdin" {
		return "-"
	}
	return source + ".manifest.json"
}

func init() {
	rootCmd.AddCommand(chunkCmd)

	chunkCmd.Flags().StringVar(&chunkAlgo, "algo", "", "hash algorithm for chunk digests and the Merkle root")
	chunkCmd.Flags().StringVar(&chunkSeed, "seed", "", "gear hash seed (decimal or 0x hex) deriving alternate boundaries")
	chunkCmd.Flags().StringVar(&chunkTable, "table", "", "path to a JSON gear table (defaults to the built-in table)")
	chunkCmd.Flags().StringVar(&chunkManifest, "manifest", "", `manifest output path ("-" for stdout, defaults to FILE.manifest.json)`)
	chunkCmd.Flags().StringVar(&chunkOut, "out", "", "directory to store chunk payloads, named by digest")
	chunkCmd.Flags().StringVar(&chunkCompression, "compression", "", "compression for stored chunk payloads (gzip, lz4, zstd, none)")
	chunkCmd.Flags().BoolVar(&chunkProgress, "progress", false, "show a progress bar for regular files")
}
