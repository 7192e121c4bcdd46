package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceBitstream/pkg/bitstream"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flipWords bool

var squeezeCmd = &cobra.Command{
	Use:   "squeeze <bit-file> <bin-file>",
	Short: "Rewrite a bitstream without CRC packets and with the IDCODE retargeted",
	Long: `Decode a BIT file, prove the decode is lossless, then rewrite it with
every CRC write packet dropped and known IDCODE values remapped.
The output is written only if all passes succeed.

Examples:
  otb squeeze design.bit design.bin
  otb squeeze --flip design.bit design.bin   # SPI flash word order`,
	Args: cobra.ExactArgs(2),
	RunE: runSqueeze,
}

func init() {
	rootCmd.AddCommand(squeezeCmd)

	squeezeCmd.Flags().BoolVar(&flipWords, "flip", false,
		"flip 32-bit word byte order in the output (SPI flash layout)")
}

func runSqueeze(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	// The rewrite pass doubles as the decoder's correctness check: if
	// re-encoding does not reproduce the input, do not transform it.
	if err := roundTrip(data); err != nil {
		return fmt.Errorf("verify %s: %w", args[0], err)
	}

	var out bytes.Buffer
	sq := bitstream.NewSqueeze(&out)
	if _, err := bitstream.NewContainerReader(sq).Parse(data); err != nil {
		return fmt.Errorf("squeeze %s: %w", args[0], err)
	}

	if verbose {
		for _, crc := range sq.DroppedCRCs() {
			fmt.Printf("dropped CRC word 0x%08X\n", crc)
		}
	}

	buf := out.Bytes()
	if flipWords {
		if buf, err = bitstream.Flip32(buf); err != nil {
			return fmt.Errorf("flip %s: %w", args[1], err)
		}
	}

	if err := os.WriteFile(args[1], buf, 0o644); err != nil {
		return err
	}

	color.Green("%s: %d bytes, %d CRC writes dropped, %d IDCODE writes remapped",
		args[1], len(buf), len(sq.DroppedCRCs()), sq.RemappedIDCodes())
	return nil
}
