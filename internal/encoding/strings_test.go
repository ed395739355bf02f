package encoding

import (
	"errors"
	"testing"
)

func TestFormatBinary8(t *testing.T) {
	cases := map[byte]string{
		0:   "00000000",
		1:   "00000001",
		45:  "00101101",
		128: "10000000",
		255: "11111111",
	}
	for in, want := range cases {
		if got := FormatBinary8(in); got != want {
			t.Errorf("FormatBinary8(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseBinary(t *testing.T) {
	cases := []struct {
		in      string
		want    byte
		wantErr bool
	}{
		{"0", 0, false},
		{"0110011", 0b0110011, false},
		{"0b1101001", 0b1101001, false},
		{"100000001", 1, false},
		{"-1", 0xFF, false},
		{"1111111111111111111111111111111", 0xFF, false},
		{"-10000000000000000000000000000000", 0, false},
		{"10000000000000000000000000000000", 0, true},
		{"", 0, true},
		{"102", 0, true},
		{"encode", 0, true},
	}
	for _, c := range cases {
		got, err := ParseBinary(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidLiteral) {
				t.Errorf("ParseBinary(%q): expected ErrInvalidLiteral, got %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBinary(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseBinary(%q) = %08b, want %08b", c.in, got, c.want)
		}
	}
}
