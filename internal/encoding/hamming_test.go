package encoding

import (
	"testing"
)

func TestEncodeNibble(t *testing.T) {
	cases := []struct {
		in   byte
		want byte
	}{
		{0b0000, 0b00000000},
		{0b0001, 0b01101001},
		{0b0010, 0b00101010},
		{0b0011, 0b01000011},
		{0b0100, 0b01001100},
		{0b0101, 0b00100101},
		{0b0110, 0b01100110},
		{0b1011, 0b00110011},
		{0b1101, 0b01010101},
	}
	for _, c := range cases {
		if got := EncodeNibble(c.in); got != c.want {
			t.Errorf("EncodeNibble(%04b) = %08b, want %08b", c.in, got, c.want)
		}
	}
}

func TestEncodeNibbleMasksUpperBits(t *testing.T) {
	for n := 0; n < 256; n++ {
		if got, want := EncodeNibble(byte(n)), EncodeNibble(byte(n)&0x0F); got != want {
			t.Fatalf("EncodeNibble(%08b) = %08b, want %08b", n, got, want)
		}
	}
}

func parity(b byte) byte {
	var p byte
	for ; b != 0; b >>= 1 {
		p ^= b & 1
	}
	return p
}

func TestEncodeNibbleEvenParity(t *testing.T) {
	groups := []byte{
		bitP1 | bitD1 | bitD2 | bitD4,
		bitP2 | bitD1 | bitD3 | bitD4,
		bitP3 | bitD2 | bitD3 | bitD4,
	}
	for n := byte(0); n < 16; n++ {
		cw := EncodeNibble(n)
		if cw&0x80 != 0 {
			t.Errorf("codeword %08b for %04b has bit 7 set", cw, n)
		}
		for i, g := range groups {
			if parity(cw&g) != 0 {
				t.Errorf("codeword %08b for %04b: parity group %d is odd", cw, n, i+1)
			}
		}
	}
}

func TestDecodeNibble(t *testing.T) {
	cases := []struct {
		name string
		in   byte
	}{
		{"no error", 0b00110011},
		{"d1 flip", 0b00100011},
		{"d2 flip", 0b00110111},
		{"d3 flip", 0b00110001},
		{"d4 flip", 0b00110010},
		{"p3 flip", 0b00111011},
		{"p2 flip", 0b00010011},
		{"p1 flip", 0b01110011},
		{"bit 7 set", 0b10110011},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DecodeNibble(c.in); got != 0b1011 {
				t.Errorf("DecodeNibble(%08b) = %04b, want 1011", c.in, got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for n := byte(0); n < 16; n++ {
		res := Decode(EncodeNibble(n))
		if res.Value != n {
			t.Errorf("round trip %04b gave %04b", n, res.Value)
		}
		if res.Syndrome != 0 || res.Status != NoError {
			t.Errorf("clean codeword for %04b: syndrome %03b status %v", n, res.Syndrome, res.Status)
		}
	}
}

func flip(cw byte, pos uint) byte {
	return cw ^ 1<<pos
}

func TestSingleBitCorrection(t *testing.T) {
	for n := byte(0); n < 16; n++ {
		for pos := uint(0); pos < 7; pos++ {
			bad := flip(EncodeNibble(n), pos)
			if got := DecodeNibble(bad); got != n {
				t.Errorf("nibble %04b with bit %d flipped decoded to %04b", n, pos, got)
			}
			res := Decode(bad)
			if res.ErrorBit() != 1<<pos {
				t.Errorf("nibble %04b bit %d: syndrome %03b points at %08b", n, pos, res.Syndrome, res.ErrorBit())
			}
		}
	}
}

func TestParityBitFlipStatus(t *testing.T) {
	for n := byte(0); n < 16; n++ {
		for _, p := range []byte{bitP1, bitP2, bitP3} {
			res := Decode(EncodeNibble(n) ^ p)
			if res.Status != ParityBitError {
				t.Errorf("nibble %04b parity %08b: status %v", n, p, res.Status)
			}
			if res.Value != n {
				t.Errorf("nibble %04b parity %08b: value %04b", n, p, res.Value)
			}
		}
		for _, d := range []byte{bitD1, bitD2, bitD3, bitD4} {
			if res := Decode(EncodeNibble(n) ^ d); res.Status != Corrected {
				t.Errorf("nibble %04b data %08b: status %v", n, d, res.Status)
			}
		}
	}
}

// Two flipped bits are outside what the code can correct. The decoder must
// still answer, and for at least some patterns the answer is wrong.
func TestDoubleBitErrorIsNotCorrected(t *testing.T) {
	wrong := 0
	for n := byte(0); n < 16; n++ {
		for a := uint(0); a < 7; a++ {
			for b := a + 1; b < 7; b++ {
				res := Decode(flip(flip(EncodeNibble(n), a), b))
				if res.Syndrome == 0 {
					t.Errorf("double flip %d,%d of %04b gave a zero syndrome", a, b, n)
				}
				if res.Value != n {
					wrong++
				}
			}
		}
	}
	if wrong == 0 {
		t.Error("expected double-bit errors to be mis-decoded")
	}
}

func TestStatusString(t *testing.T) {
	if NoError.String() != "ok" || Corrected.String() != "corrected" || ParityBitError.String() != "parity-error" {
		t.Error("unexpected status names")
	}
	if Status(42).String() != "unknown" {
		t.Error("unexpected name for unknown status")
	}
}
