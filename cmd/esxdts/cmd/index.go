package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/esxdts/internal/binidx"
	"github.com/cwbudde/esxdts/internal/model"
)

var indexShowOffsets bool

var indexCmd = &cobra.Command{
	Use:   "index <blob-file>",
	Short: "Dump the binary string index scanned from a native library file",
	Long: `Index scans a native library file the same way convert's binary
recovery pass does and prints every string it found. This is a
diagnostic command for inspecting why a particular method did or did
not get repaired, not part of the normal conversion pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().BoolVar(&indexShowOffsets, "offsets", false, "print byte offsets alongside each string")
}

func runIndex(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	idx := binidx.Build(model.Blob{Name: filepath.Base(path), Bytes: data})

	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d string(s)\n", idx.BlobName, len(idx.Entries))
	}

	for _, e := range idx.Entries {
		if indexShowOffsets {
			fmt.Printf("%8d  %s\n", e.ByteOffset, e.Text)
		} else {
			fmt.Println(e.Text)
		}
	}

	return nil
}
