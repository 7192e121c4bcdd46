// Package xilinx decodes JTAG IDCODE values and names the 7-series
// parts they identify.
package xilinx

// IDCode represents a parsed IEEE 1149.1 device identification code.
type IDCode struct {
	Raw              uint32 // full IDCODE
	Version          uint8  // [31:28] die revision
	PartNumber       uint16 // [27:12]
	ManufacturerCode uint16 // [11:1] JEP106
	Valid            bool   // bit 0 == 1
}

// ManufacturerXilinx is the JEP106 code Xilinx devices report.
const ManufacturerXilinx = 0x049

// ParseIDCode parses a raw 32-bit IDCODE into its component fields.
func ParseIDCode(raw uint32) IDCode {
	return IDCode{
		Raw:              raw,
		Version:          uint8((raw >> 28) & 0xF),
		PartNumber:       uint16((raw >> 12) & 0xFFFF),
		ManufacturerCode: uint16((raw >> 1) & 0x7FF),
		Valid:            (raw & 0x1) == 0x1,
	}
}

// IsXilinx reports whether the code is valid and carries the Xilinx
// manufacturer ID.
func (id IDCode) IsXilinx() bool {
	return id.Valid && id.ManufacturerCode == ManufacturerXilinx
}
