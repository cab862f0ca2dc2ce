package arch

import "testing"

func TestBitRange_Width(t *testing.T) {
	tests := []struct {
		name  string
		r     BitRange
		width int
	}{
		{"full byte", BitRange{0, 8}, 8},
		{"single pin", BitRange{3, 4}, 1},
		{"upper half", BitRange{4, 8}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestBitRange_FitsWidth(t *testing.T) {
	tests := []struct {
		name  string
		r     BitRange
		width int
		fits  bool
	}{
		{"exact fit", BitRange{0, 8}, 8, true},
		{"strict subset", BitRange{2, 6}, 8, true},
		{"too wide", BitRange{0, 9}, 8, false},
		{"upper overflow", BitRange{6, 10}, 8, false},
		{"negative lo", BitRange{-1, 4}, 8, false},
		{"empty range", BitRange{4, 4}, 8, false},
		{"inverted range", BitRange{5, 2}, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.FitsWidth(tt.width); got != tt.fits {
				t.Errorf("FitsWidth(%d) = %v, want %v", tt.width, got, tt.fits)
			}
		})
	}
}

func TestFullRange(t *testing.T) {
	r := FullRange(4)
	if r.Lo != 0 || r.Hi != 4 {
		t.Errorf("FullRange(4) = %v, want 0..4", r)
	}
	if r.String() != "0..4" {
		t.Errorf("String() = %q, want \"0..4\"", r.String())
	}
}
