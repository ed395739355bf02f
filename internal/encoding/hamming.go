package encoding

// Codeword layout, MSB first: 0 p1 p2 d1 p3 d2 d3 d4.
// Bit 7 is never set by the encoder and is ignored by the decoder.
const (
	bitP1 byte = 0x40
	bitP2 byte = 0x20
	bitD1 byte = 0x10
	bitP3 byte = 0x08
	bitD2 byte = 0x04
	bitD3 byte = 0x02
	bitD4 byte = 0x01
)

// Parity bits each data bit participates in, in codeword layout.
const (
	toggleD1 = bitP1 | bitP2
	toggleD2 = bitP1 | bitP3
	toggleD3 = bitP2 | bitP3
	toggleD4 = bitP1 | bitP2 | bitP3
)

// Working layout used while decoding: 0 p1 p2 p3 d1 d2 d3 d4.
const (
	workP1 byte = 0x40
	workP2 byte = 0x20
	workP3 byte = 0x10
	workD1 byte = 0x08
	workD2 byte = 0x04
	workD3 byte = 0x02
	workD4 byte = 0x01

	workParity = workP1 | workP2 | workP3
	workData   = workD1 | workD2 | workD3 | workD4
)

const nibbleMask byte = 0x0F

// Status tells how Decode arrived at its value.
type Status int

const (
	// NoError means all three parity checks held.
	NoError Status = iota
	// Corrected means one data bit was flipped back.
	Corrected
	// ParityBitError means exactly one parity check failed; the data bits
	// were returned unchanged.
	ParityBitError
)

func (s Status) String() string {
	switch s {
	case NoError:
		return "ok"
	case Corrected:
		return "corrected"
	case ParityBitError:
		return "parity-error"
	default:
		return "unknown"
	}
}

// syndromeFlips maps the syndrome p1p2p3 to the data bit (working layout)
// in error. Zero entries are either "no error" or a lone parity bit.
var syndromeFlips = [8]byte{
	0b000: 0,
	0b001: 0,
	0b010: 0,
	0b011: workD3,
	0b100: 0,
	0b101: workD2,
	0b110: workD1,
	0b111: workD4,
}

// syndromeCodewordBit maps a syndrome to the codeword bit it points at.
// Used for display only.
var syndromeCodewordBit = [8]byte{
	0b000: 0,
	0b001: bitP3,
	0b010: bitP2,
	0b011: bitD3,
	0b100: bitP1,
	0b101: bitD2,
	0b110: bitD1,
	0b111: bitD4,
}

// Result is the full outcome of decoding one codeword.
type Result struct {
	Value    byte
	Syndrome byte
	Status   Status
}

// ErrorBit returns the codeword bit the syndrome points at, or 0 when the
// codeword was consistent.
func (r Result) ErrorBit() byte {
	return syndromeCodewordBit[r.Syndrome&0x07]
}

// EncodeNibble encodes the low four bits of nibble into a Hamming(7,4)
// codeword. Upper bits are ignored.
func EncodeNibble(nibble byte) byte {
	encoded := nibble & (bitD2 | bitD3 | bitD4)
	encoded |= (nibble & 0x08) << 1

	if encoded&bitD4 != 0 {
		encoded ^= toggleD4
	}
	if encoded&bitD3 != 0 {
		encoded ^= toggleD3
	}
	if encoded&bitD2 != 0 {
		encoded ^= toggleD2
	}
	if encoded&bitD1 != 0 {
		encoded ^= toggleD1
	}
	return encoded
}

// Decode decodes a codeword and reports the syndrome and what was done
// about it. A single flipped bit is always corrected or recognised as a
// parity bit. Two or more flipped bits are NOT detected: they produce a
// syndrome that looks like a single error and Value is silently wrong.
func Decode(codeword byte) Result {
	work := codeword & (bitD2 | bitD3 | bitD4)
	work |= (codeword & bitD1) >> 1
	work |= codeword & (bitP1 | bitP2)
	work |= (codeword & bitP3) << 1

	if work&workD4 != 0 {
		work ^= workP1 | workP2 | workP3
	}
	if work&workD3 != 0 {
		work ^= workP2 | workP3
	}
	if work&workD2 != 0 {
		work ^= workP1 | workP3
	}
	if work&workD1 != 0 {
		work ^= workP1 | workP2
	}

	syndrome := (work & workParity) >> 4
	res := Result{
		Value:    work & workData,
		Syndrome: syndrome,
	}
	switch flip := syndromeFlips[syndrome]; {
	case syndrome == 0:
		res.Status = NoError
	case flip != 0:
		res.Value ^= flip
		res.Status = Corrected
	default:
		res.Status = ParityBitError
	}
	return res
}

// DecodeNibble returns the corrected 4-bit value of codeword. See Decode
// for the limits of the correction.
func DecodeNibble(codeword byte) byte {
	return Decode(codeword).Value & nibbleMask
}
