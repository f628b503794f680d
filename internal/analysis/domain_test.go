package analysis

import "testing"

func TestDomain_TextualPatterns(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"sqrt(x)", "x ≥ 0"},
		{"sqrt(x+1)", "argument of √ must be ≥ 0"},
		{"2*sqrt(x-3)", "argument of √ must be ≥ 0"},
		{"ln(x)", "x > 0"},
		{"log(x)", "x > 0"},
		{"log(2x)", "argument of log must be > 0"},
		{"1/x", "x ≠ 0"},
		{"tan(x)", "x ≠ π/2 + nπ"},
		{"sec(x)", "x ≠ π/2 + nπ"}, // lowered to 1/cos(x)
		{"cot(x)", "x ≠ π/2 + nπ"}, // lowered to 1/tan(x)
		{"csc(x)", "x ≠ nπ"},       // lowered to 1/sin(x)
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Domain(compileT(t, tt.raw), DefaultParams()); got != tt.want {
				t.Errorf("Domain(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDomain_Swept(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"x^2", "all real numbers"},
		{"x^3-2x", "all real numbers"},
		// floor(x) is zero on [0,1), so the sweep finds a solid block of
		// failures and gives up on listing them.
		{"1/floor(x)", "multiple restrictions"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Domain(compileT(t, tt.raw), DefaultParams()); got != tt.want {
				t.Errorf("Domain(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
