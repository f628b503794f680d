package expr

import "testing"

func TestParse_TreeShape(t *testing.T) {
	tests := []struct {
		canonical string
		want      string
	}{
		{"2+3*4", "(2 + (3 * 4))"},
		{"2*3+4", "((2 * 3) + 4)"},
		{"2^3^2", "(2 ^ (3 ^ 2))"},
		{"-x^2", "(-(x ^ 2))"},
		{"1/2*x", "((1 / 2) * x)"},
		{"sin(x+1)", "sin((x + 1))"},
		{"(x)", "x"},
	}
	for _, tt := range tests {
		n, err := parse(tt.canonical)
		if err != nil {
			t.Errorf("parse(%q) error: %v", tt.canonical, err)
			continue
		}
		if got := n.String(); got != tt.want {
			t.Errorf("parse(%q) = %s, want %s", tt.canonical, got, tt.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{"", "()", "2+", "*x", "sin", "sin x", "x y", "2 3"}
	for _, canonical := range tests {
		if _, err := parse(canonical); err == nil {
			t.Errorf("parse(%q) succeeded, want error", canonical)
		}
	}
}
