package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/lupppig/dchunk/fastcdc"
	"github.com/lupppig/dchunk/internal/config"
	"github.com/lupppig/dchunk/merkle"
	"github.com/spf13/cobra"
)

var (
	rootHashAlgo  string
	rootHashSeed  string
	rootHashTable string
)

var rootHashCmd = &cobra.Command{
	Use:   "root FILE...",
	Short: "Print the Merkle root of each input",
	Long: `Chunk each input and print the root digest of the Merkle tree built over
its chunks, one line per input in sha256sum style. Two files with the same
root carry identical content.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algoName := rootHashAlgo
		if algoName == "" {
			algoName = config.GetConfig().Algorithm
		}
		algo, err := merkle.LookupAlgorithm(algoName)
		if err != nil {
			return err
		}
		seed, err := parseSeed(rootHashSeed)
		if err != nil {
			return err
		}
		table, err := loadTable(rootHashTable)
		if err != nil {
			return err
		}

		for _, arg := range args {
			root, err := rootOf(arg, algo, table, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", root, arg)
		}
		return nil
	},
}

func rootOf(arg string, algo merkle.Algorithm, table *fastcdc.Table, seed uint64) (string, error) {
	in, source, _, err := openInput(arg)
	if err != nil {
		return "", err
	}
	defer in.Close()

	tree := merkle.NewWith(algo)
	chunker := fastcdc.NewChunker(in, table, seed)
	for {
		chunk, err := chunker.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("chunk %s: %w", source, err)
		}
		tree.Append(chunk.Data)
	}
	return tree.HexDigest(), nil
}

func init() {
	rootCmd.AddCommand(rootHashCmd)

	rootHashCmd.Flags().StringVar(&rootHashAlgo, "algo", "", "hash algorithm for the Merkle tree")
	rootHashCmd.Flags().StringVar(&rootHashSeed, "seed", "", "gear hash seed (decimal or 0x hex)")
	rootHashCmd.Flags().StringVar(&rootHashTable, "table", "", "path to a JSON gear table")
}
