package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "sqlvec",
		Short:        "Vector encoding and distance tool",
		Long:         "Encodes vector literals into the BLOB format used by the vector SQL functions, decodes BLOBs back to text and computes distances.",
		SilenceUsage: true,
	}
	root.AddCommand(
		encodeCmd(),
		extractCmd(),
		distanceCmd(),
	)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
