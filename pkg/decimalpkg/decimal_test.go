package decimalpkg

import "testing"

func TestIsDecimal(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"42350.00", true},
		{"-1.23", true},
		{"0", true},
		{"830000000000.00", true},
		{"", false},
		{"abc", false},
		{"1.2.3", false},
		{"5 BTC", false},
	}

	for _, tc := range testCases {
		if got := IsDecimal(tc.in); got != tc.want {
			t.Errorf("IsDecimal(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
