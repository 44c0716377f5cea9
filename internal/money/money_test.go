package money

import "testing"

func TestCurrency_Format(t *testing.T) {
	cases := []struct {
		name string
		cur  Currency
		in   int64
		want string
	}{
		{"suffix", BDT, 480, "480 BDT"},
		{"suffix zero", BDT, 0, "0 BDT"},
		{"symbol", Currency{Code: "USD", Symbol: "$"}, 12, "$12"},
		{"symbol negative", Currency{Symbol: "$"}, -5, "-$5"},
		{"bare", Currency{}, 7, "7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cur.Format(tc.in); got != tc.want {
				t.Fatalf("Format(%d)=%q want=%q", tc.in, got, tc.want)
			}
		})
	}
}
