package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otb",
	Short: "Xilinx 7-series bitstream parser and rewriter",
	Long: `OpenTraceBitstream (otb) decodes BIT container files, proves that they
re-serialize losslessly, and rewrites them into flashable images with
the CRC check packets removed and the IDCODE retargeted.

Examples:
  otb info design.bit                  # Show container metadata and a packet summary
  otb verify design.bit                # Prove the decode/re-encode round trip is lossless
  otb squeeze design.bit design.bin    # Write the squeezed bitstream`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
