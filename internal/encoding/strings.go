package encoding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidLiteral = errors.New("invalid binary literal")

// FormatBinary8 renders v as eight '0'/'1' characters, MSB first.
func FormatBinary8(v byte) string {
	return fmt.Sprintf("%08b", v)
}

// ParseBinary parses a base-2 literal such as "0110011" or "-101" that fits
// in an int32. Only the low eight bits of the value are kept.
func ParseBinary(tok string) (byte, error) {
	tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0b"), "0B")
	n, err := strconv.ParseInt(tok, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLiteral, tok)
	}
	return byte(n), nil
}
