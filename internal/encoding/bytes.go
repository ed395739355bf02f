package encoding

// EncodeByte encodes the high and low nibble of b as two independent
// codewords, high first.
func EncodeByte(b byte) (high, low byte) {
	return EncodeNibble(b >> 4), EncodeNibble(b & nibbleMask)
}

// EncodeByteWord packs the two codewords of b into one value, high
// codeword in the upper byte.
func EncodeByteWord(b byte) uint16 {
	high, low := EncodeByte(b)
	return uint16(high)<<8 | uint16(low)
}

// DecodeByte decodes two codewords into one byte. An error in one
// codeword never affects the other nibble.
func DecodeByte(high, low byte) byte {
	return DecodeNibble(high)<<4 | DecodeNibble(low)
}

// DecodeByteWord is the inverse of EncodeByteWord.
func DecodeByteWord(w uint16) byte {
	return DecodeByte(byte(w>>8), byte(w))
}

// DecodeSingle decodes a lone codeword as the low nibble of a byte whose
// high codeword is zero.
func DecodeSingle(codeword byte) byte {
	return DecodeByte(0, codeword)
}
