package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/esxdts/internal/xmlload"
	"github.com/cwbudde/esxdts/pkg/esxdts"
)

var convertOutputFile string

var convertCmd = &cobra.Command{
	Use:   "convert <xml-file> [blob-files...]",
	Short: "Convert an ExtendScript XML dump into a TypeScript declaration file",
	Long: `Convert parses an ExtendScript object-model XML dump and emits a
TypeScript .d.ts declaration file.

Any additional files given after the XML file are treated as the native
library blobs the XML was exported from. When present, esxdts scans them
for parameter names and descriptions missing from the XML and repairs
the affected methods before emitting the declaration file.

Examples:
  # Convert XML alone
  esxdts convert Photoshop.xml -o photoshop.d.ts

  # Convert with binary recovery against the library that produced the XML
  esxdts convert Photoshop.xml Photoshop.framework -o photoshop.d.ts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutputFile, "output", "o", "", "output file (default: stdout)")
}

func runConvert(_ *cobra.Command, args []string) error {
	xmlPath := args[0]
	blobPaths := args[1:]

	root, err := xmlload.ReadFile(xmlPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", xmlPath, err)
	}

	blobs := make([]esxdts.Blob, 0, len(blobPaths))
	for _, path := range blobPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read blob %s: %w", path, err)
		}
		blobs = append(blobs, esxdts.Blob{Name: filepath.Base(path), Bytes: data})
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing %s...\n", xmlPath)
		if len(blobs) > 0 {
			fmt.Fprintf(os.Stderr, "Scanning %d blob(s) for recoverable strings...\n", len(blobs))
		}
	}

	out, stats, err := esxdts.ConvertWithStats(root, blobs)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Definitions:           %d\n", stats.Definitions)
		fmt.Fprintf(os.Stderr, "Methods:               %d\n", stats.Methods)
		fmt.Fprintf(os.Stderr, "Methods needing recovery: %d\n", stats.MethodsNeedingRecovery)
		fmt.Fprintf(os.Stderr, "Methods found in blobs:   %d\n", stats.MethodsRecoveredFromBin)
	}

	if convertOutputFile == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(convertOutputFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", convertOutputFile, err)
	}

	if !verbose {
		fmt.Printf("Converted %s -> %s\n", xmlPath, convertOutputFile)
	}

	return nil
}
