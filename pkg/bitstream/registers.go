package bitstream

import "fmt"

// Register is a 5-bit 7-series configuration register address.
type Register uint8

const (
	RegCRC     Register = 0
	RegFAR     Register = 1
	RegFDRI    Register = 2
	RegFDRO    Register = 3
	RegCMD     Register = 4
	RegCTL0    Register = 5
	RegMASK    Register = 6
	RegSTAT    Register = 7
	RegLOUT    Register = 8
	RegCOR0    Register = 9
	RegMFWR    Register = 10
	RegCBC     Register = 11
	RegIDCODE  Register = 12
	RegAXSS    Register = 13
	RegCOR1    Register = 14
	RegWBSTAR  Register = 16
	RegTIMER   Register = 17
	RegBOOTSTS Register = 22
	RegCTL1    Register = 24
	RegBSPI    Register = 31
)

// registerNames covers the full 32-entry address space; unnamed slots
// are reserved in UG470.
var registerNames = [32]string{
	"CRC", "FAR", "FDRI", "FDRO", "CMD", "CTL0", "MASK", "STAT",
	"LOUT", "COR0", "MFWR", "CBC", "IDCODE", "AXSS", "COR1", "reserved",
	"WBSTAR", "TIMER", "reserved", "reserved", "reserved", "reserved", "BOOTSTS", "reserved",
	"CTL1", "reserved", "reserved", "reserved", "reserved", "reserved", "reserved", "BSPI",
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

func init() {
	// The table is positional; a misplaced entry would misroute the CRC
	// and IDCODE handling in Squeeze.
	for reg, name := range map[Register]string{
		RegCRC:     "CRC",
		RegFAR:     "FAR",
		RegCMD:     "CMD",
		RegIDCODE:  "IDCODE",
		RegBOOTSTS: "BOOTSTS",
		RegCTL1:    "CTL1",
		RegBSPI:    "BSPI",
	} {
		if registerNames[reg] != name {
			panic(fmt.Sprintf("bitstream: register table entry %d = %q, want %q",
				reg, registerNames[reg], name))
		}
	}
}
