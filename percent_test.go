package cumreturn

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		p      Percent
		str    string
		signed string
	}{
		{8.6751, "8.68%", "+8.68%"},
		{-4.366, "-4.37%", "-4.37%"},
		{0, "0.00%", "-"},
		{-0.001, "-0.00%", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.p.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.p.SignedString(); got != tt.signed {
				t.Errorf("SignedString() = %q, want %q", got, tt.signed)
			}
		})
	}
	if !Percent(8.67500001).Equal(8.675) {
		t.Errorf("Equal() must tolerate rounding errors")
	}
}
