// Command esxdts recovers a TypeScript declaration file from an
// ExtendScript object-model XML dump and, optionally, the native
// library files it was exported from.
package main

import (
	"os"

	"github.com/cwbudde/esxdts/cmd/esxdts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
