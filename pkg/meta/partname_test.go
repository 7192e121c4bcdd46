package meta

import "testing"

func TestParsePartName(t *testing.T) {
	cases := []struct {
		in   string
		want PartName
	}{
		{
			in:   "7a35tcsg324",
			want: PartName{Family: "Artix-7", Device: "7a35t", Package: "csg324"},
		},
		{
			in:   "xc7a100tcsg324-1",
			want: PartName{Family: "Artix-7", Device: "7a100t", Package: "csg324", SpeedGrade: "1"},
		},
		{
			in:   "7k325tffg900-2",
			want: PartName{Family: "Kintex-7", Device: "7k325t", Package: "ffg900", SpeedGrade: "2"},
		},
		{
			in:   "7z020clg484-1",
			want: PartName{Family: "Zynq-7000", Device: "7z020", Package: "clg484", SpeedGrade: "1"},
		},
		{
			in:   "7s50csga324-1",
			want: PartName{Family: "Spartan-7", Device: "7s50", Package: "csga324", SpeedGrade: "1"},
		},
		{
			in:   "7a35ticsg324-1L",
			want: PartName{Family: "Artix-7", Device: "7a35ti", Package: "csg324", SpeedGrade: "1l"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePartName(tc.in)
			if err != nil {
				t.Fatalf("ParsePartName(%q) error = %v", tc.in, err)
			}
			if got.Family != tc.want.Family || got.Device != tc.want.Device ||
				got.Package != tc.want.Package || got.SpeedGrade != tc.want.SpeedGrade {
				t.Fatalf("ParsePartName(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePartNameRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "spartan3", "6slx9tqg144", "7q99xyz"} {
		if _, err := ParsePartName(in); err == nil {
			t.Fatalf("ParsePartName(%q) did not fail", in)
		}
	}
}
