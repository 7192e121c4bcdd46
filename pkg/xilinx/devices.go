package xilinx

// Device describes one 7-series part.
type Device struct {
	Name   string // "XC7A35T"
	Family string // "Artix-7"
}

// revisionMask strips the die revision bits [31:28]; the same part
// reports different revisions across steppings.
const revisionMask = 0x0FFFFFFF

// devices is the in-memory device database, keyed by revision-masked
// IDCODE.
var devices = make(map[uint32]Device)

// register adds a device entry to the database.
func register(idcode uint32, d Device) {
	devices[idcode&revisionMask] = d
}

func init() {
	// Artix-7
	register(0x0362E093, Device{Name: "XC7A15T", Family: "Artix-7"})
	register(0x0362D093, Device{Name: "XC7A35T", Family: "Artix-7"})
	register(0x0362C093, Device{Name: "XC7A50T", Family: "Artix-7"})
	register(0x13630093, Device{Name: "XC7A75T", Family: "Artix-7"})
	register(0x13631093, Device{Name: "XC7A100T", Family: "Artix-7"})
	register(0x13636093, Device{Name: "XC7A200T", Family: "Artix-7"})

	// Kintex-7
	register(0x03647093, Device{Name: "XC7K70T", Family: "Kintex-7"})
	register(0x0364C093, Device{Name: "XC7K160T", Family: "Kintex-7"})
	register(0x03651093, Device{Name: "XC7K325T", Family: "Kintex-7"})
	register(0x03656093, Device{Name: "XC7K410T", Family: "Kintex-7"})

	// Zynq-7000
	register(0x13722093, Device{Name: "XC7Z010", Family: "Zynq-7000"})
	register(0x13731093, Device{Name: "XC7Z020", Family: "Zynq-7000"})
	register(0x1372C093, Device{Name: "XC7Z030", Family: "Zynq-7000"})
	register(0x13751093, Device{Name: "XC7Z045", Family: "Zynq-7000"})
}

// Lookup returns the device entry matching an IDCODE, ignoring the die
// revision field.
func Lookup(raw uint32) (Device, bool) {
	d, ok := devices[raw&revisionMask]
	return d, ok
}
