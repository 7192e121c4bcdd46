package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceBitstream/pkg/bitstream"
	"github.com/OpenTraceLab/OpenTraceBitstream/pkg/meta"
	"github.com/OpenTraceLab/OpenTraceBitstream/pkg/xilinx"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <bit-file>",
	Short: "Show container metadata and a packet summary",
	Long: `Parse a BIT file and display its metadata records, the configuration
packet counts, and the device the embedded IDCODE write identifies.

Examples:
  otb info design.bit
  otb info -v design.bit          # also list every configuration packet`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	sum := &bitstream.Summary{Collect: verbose}
	if _, err := bitstream.NewContainerReader(sum).Parse(data); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	for _, rec := range sum.Records {
		color.Cyan("%s: %s", rec.Name, rec.Text)
		switch rec.Key {
		case 'a':
			if d, err := meta.ParseDesign(rec.Text); err == nil {
				for _, p := range d.Props {
					fmt.Printf("  %s = %s\n", p.Key, p.Value)
				}
			}
		case 'b':
			if pn, err := meta.ParsePartName(rec.Text); err == nil {
				fmt.Printf("  family %s, device %s, package %s", pn.Family, pn.Device, pn.Package)
				if pn.SpeedGrade != "" {
					fmt.Printf(", speed grade -%s", pn.SpeedGrade)
				}
				fmt.Println()
			}
		}
	}

	fmt.Printf("Bitstream payload length: %#x (%d bytes)\n", sum.BitstreamLen, sum.BitstreamLen)
	fmt.Printf("Sync word after %d leading bytes\n", sum.LeadBytes)
	fmt.Printf("Packets: %d nop, %d read, %d write (%d CRC writes)\n",
		sum.Nops, sum.Reads, sum.Writes, sum.CRCWrites)

	if sum.HasIDCode {
		line := fmt.Sprintf("IDCODE: 0x%08X", sum.IDCode)
		if dev, ok := xilinx.Lookup(sum.IDCode); ok {
			line += fmt.Sprintf(" (%s, %s)", dev.Name, dev.Family)
		} else if xilinx.ParseIDCode(sum.IDCode).IsXilinx() {
			line += " (unrecognized Xilinx part)"
		}
		color.Green("%s", line)
	}

	if verbose {
		fmt.Println()
		for _, p := range sum.Packets {
			fmt.Printf("  %-6s %-6s %-8s %d words\n", p.Type, p.Op, p.Addr, p.WordCount())
		}
	}
	return nil
}
