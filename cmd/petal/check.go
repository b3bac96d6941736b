package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcross/petal"
)

var (
	checkSize   uint64
	checkHashes uint64
	checkSet    string
	checkHasher string
)

func init() {
	checkCmd.Flags().Uint64Var(&checkSize, "size", 1<<20, "bit array length")
	checkCmd.Flags().Uint64Var(&checkHashes, "hashes", 5, "hash positions per item")
	checkCmd.Flags().StringVar(&checkSet, "set", "", "file of newline-delimited items to insert (required)")
	checkCmd.Flags().StringVar(&checkHasher, "hasher", "digest", "hashing strategy: digest, xxh3, or murmur3")
	checkCmd.MarkFlagRequired("set")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check --set FILE ITEM...",
	Short: "load a set and test items for membership",
	Long: `Load newline-delimited items from a file into a bloom filter, then
report for each argument whether it might be in the set ("maybe") or is
definitely not ("no").`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var hasher petal.IndexHasher
		switch checkHasher {
		case "digest":
			hasher = petal.DigestHasher{}
		case "xxh3":
			hasher = petal.XXH3Hasher{}
		case "murmur3":
			hasher = petal.Murmur3Hasher{}
		default:
			return fmt.Errorf("unknown hasher %q", checkHasher)
		}

		filter, err := petal.NewAtomicWithHasher(checkSize, checkHashes, hasher)
		if err != nil {
			return err
		}

		if err := loadSet(filter, checkSet); err != nil {
			return err
		}

		for _, item := range args {
			verdict := "no"
			if filter.Test([]byte(item)) {
				verdict = "maybe"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, item)
		}
		return nil
	},
}

func loadSet(filter petal.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := filter.Set(scanner.Bytes()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
