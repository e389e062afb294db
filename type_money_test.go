package ledger

import "testing"

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{"4.50", "4.50", false},
		{"-4.5", "-4.50", false},
		{"100", "100.00", false},
		{" 2500.00 ", "2500.00", false},
		{"0", "0.00", false},
		{"12.345", "12.35", false}, // String rounds to the wire precision
		{"twelve", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got.String() != tt.want {
				t.Errorf("ParseMoney(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyEqualApprox(t *testing.T) {
	a := M(4.50)
	if !a.EqualApprox(M(4.50)) {
		t.Errorf("EqualApprox() = false for equal amounts")
	}
	if !a.EqualApprox(M(4.50005)) {
		t.Errorf("EqualApprox() = false within the tolerance")
	}
	if a.EqualApprox(M(4.51)) {
		t.Errorf("EqualApprox() = true outside the tolerance")
	}
	if a.EqualApprox(a.Neg()) {
		t.Errorf("EqualApprox() = true for opposite signs")
	}
}

func TestMoneySigns(t *testing.T) {
	if !M(-4.50).IsNegative() || M(-4.50).IsPositive() {
		t.Errorf("M(-4.50) has the wrong sign")
	}
	if got, want := M(4.50).Abs().Neg().String(), "-4.50"; got != want {
		t.Errorf("Abs().Neg() = %q, want %q", got, want)
	}
	if got, want := M(-4.50).Abs().String(), "4.50"; got != want {
		t.Errorf("Abs() = %q, want %q", got, want)
	}
	if !M(0).IsZero() {
		t.Errorf("M(0).IsZero() = false")
	}
}

func TestMoneyDisplay(t *testing.T) {
	if got, want := M(4.50).Display(), "$4.50"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got, want := M(-4.50).Display(), "-$4.50"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}
