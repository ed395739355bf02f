package format

import (
	"fmt"
	"strings"

	"github.com/harlequix/hamming/internal/encoding"
)

// Labels of codeword bits 6..0.
var labels = []string{"p1", "p2", "d1", "p3", "d2", "d3", "d4"}

// Block is a codeword prepared for display, optionally with the bit the
// decoder blamed.
type Block struct {
	field  byte
	marked byte
}

func NewBlock(codeword byte) *Block {
	return &Block{field: codeword}
}

// FromResult builds a block for a received codeword and marks the bit its
// syndrome points at.
func FromResult(codeword byte, res encoding.Result) *Block {
	return &Block{field: codeword, marked: res.ErrorBit()}
}

func (b *Block) Mark(bit byte) {
	b.marked = bit
}

func (b *Block) Len() int {
	return len(labels)
}

func (b *Block) Bits() []byte {
	out := make([]byte, len(labels))
	for i := range labels {
		out[i] = (b.field >> uint(len(labels)-1-i)) & 1
	}
	return out
}

// Header returns the column labels aligned with String.
func (b *Block) Header() string {
	return strings.Join(labels, " ")
}

// String renders every bit under its label. The marked bit is wrapped in
// brackets, e.g. " 0  1 [0]  0  0  1  1".
func (b *Block) String() string {
	var sb strings.Builder
	for i, bit := range b.Bits() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		mask := byte(1) << uint(len(labels)-1-i)
		if b.marked&mask != 0 {
			sb.WriteByte('[')
			sb.WriteByte('0' + bit)
			sb.WriteByte(']')
		} else {
			sb.WriteByte(' ')
			sb.WriteByte('0' + bit)
		}
	}
	return sb.String()
}

// Annotate renders the decode of one codeword as two indented lines: the
// labels, then the bits followed by the decoded value and status.
func Annotate(codeword byte, res encoding.Result) string {
	block := FromResult(codeword, res)
	return fmt.Sprintf("  %s\n  %s  -> %04b (%s)\n", block.Header(), block.String(), res.Value, res.Status)
}
