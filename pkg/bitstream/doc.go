// Package bitstream decodes and re-encodes Xilinx 7-series configuration
// bitstreams and the BIT container format that wraps them.
//
// The decoder is split in two layers. ContainerReader handles the outer
// BIT framing: the fixed header tags, the metadata records (design name,
// part name, date, time) and the length-prefixed bitstream section.
// PacketStream handles the embedded configuration stream: it scans for
// the sync word and then decodes the type 1 / type 2 packet grammar of
// UG470 until the declared section end is reached exactly.
//
// Neither layer interprets what it decodes. Every event is reported to a
// Sink, and the concrete Sink decides what to do with it:
//
//   - Rewriter re-emits every event verbatim. Re-encoding a well-formed
//     container through a Rewriter reproduces the input byte for byte,
//     which is the correctness oracle for the decoder itself.
//   - Squeeze builds on Rewriter: it drops CRC write packets and remaps
//     the IDCODE write so an image can be retargeted to a smaller die.
//   - Summary collects metadata and packet statistics for display.
//
// All input is fully buffered and decoding is single pass: any format
// violation aborts the pass with one of the sentinel errors in this
// package, and no partial output survives.
package bitstream
