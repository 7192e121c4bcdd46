package bitstream

import "testing"

func TestRegisterNames(t *testing.T) {
	cases := []struct {
		reg  Register
		want string
	}{
		{RegCRC, "CRC"},
		{RegFAR, "FAR"},
		{RegCMD, "CMD"},
		{RegIDCODE, "IDCODE"},
		{RegBOOTSTS, "BOOTSTS"},
		{RegCTL1, "CTL1"},
		{RegBSPI, "BSPI"},
		{Register(15), "reserved"},
		{Register(25), "reserved"},
	}

	for _, tc := range cases {
		if got := tc.reg.String(); got != tc.want {
			t.Fatalf("Register(%d).String() = %q, want %q", tc.reg, got, tc.want)
		}
	}
}

func TestRegisterFixedPositions(t *testing.T) {
	if RegCRC != 0 || RegFAR != 1 || RegCMD != 4 || RegIDCODE != 12 {
		t.Fatalf("register constants moved: CRC=%d FAR=%d CMD=%d IDCODE=%d",
			RegCRC, RegFAR, RegCMD, RegIDCODE)
	}
	if RegBOOTSTS != 22 || RegCTL1 != 24 || RegBSPI != 31 {
		t.Fatalf("register constants moved: BOOTSTS=%d CTL1=%d BSPI=%d",
			RegBOOTSTS, RegCTL1, RegBSPI)
	}
}

func TestRegisterStringOutOfRange(t *testing.T) {
	if got := Register(40).String(); got != "Register(40)" {
		t.Fatalf("Register(40).String() = %q, want %q", got, "Register(40)")
	}
}
