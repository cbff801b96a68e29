package deflate

import (
	"errors"
	"fmt"
)

// MaxCodeBits is the longest code length a canonical Huffman code built
// by GenerateCode may use, per RFC 1951 §3.2.7.
const MaxCodeBits = 15

var (
	// ErrLengthOutOfRange is returned by GenerateCode when a requested
	// code length exceeds MaxCodeBits.
	ErrLengthOutOfRange = errors.New("deflate: code length out of range")
	// ErrKraftViolation is returned by GenerateCode when the supplied
	// code lengths oversubscribe the code space (Kraft inequality
	// violated: sum of 2^-len over all symbols exceeds 1).
	ErrKraftViolation = errors.New("deflate: code lengths oversubscribe the code space")
)

// CodeEntry is a single canonical Huffman codeword: Len bits long,
// value Code. A zero Len means the symbol at this slot does not occur
// in the alphabet and Code is meaningless.
type CodeEntry struct {
	Len  uint8
	Code uint16
}

// GenerateCode derives the canonical Huffman code for the given
// per-symbol bit lengths, per RFC 1951 §3.2.2. The returned slice has
// the same length as lengths and is indexed by symbol, not by code
// length: entry i is the code assigned to symbol i.
//
// Canonical assignment: codes of the same length are handed out in
// ascending symbol order, and the first code of length L is derived
// from the count of codes of length L-1.
func GenerateCode(lengths []uint8) ([]CodeEntry, error) {
	var blCount [MaxCodeBits + 1]int
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if int(l) > MaxCodeBits {
			return nil, fmt.Errorf("%w: %d", ErrLengthOutOfRange, l)
		}
		blCount[l]++
	}

	if kraftSum(blCount[:]) > 1<<MaxCodeBits {
		return nil, ErrKraftViolation
	}

	var nextCode [MaxCodeBits + 1]uint16
	code := 0
	for bits := 1; bits <= MaxCodeBits; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = uint16(code)
	}

	codes := make([]CodeEntry, len(lengths))
	for symbol, l := range lengths {
		if l == 0 {
			continue
		}
		codes[symbol] = CodeEntry{Len: l, Code: nextCode[l]}
		nextCode[l]++
	}
	return codes, nil
}

// kraftSum returns Σ count(L) * 2^(MaxCodeBits-L) over all lengths,
// i.e. the Kraft sum scaled by 2^MaxCodeBits so it can be compared
// against 1<<MaxCodeBits using only integer arithmetic.
func kraftSum(blCount []int) uint64 {
	var sum uint64
	for l := 1; l <= MaxCodeBits; l++ {
		sum += uint64(blCount[l]) << uint(MaxCodeBits-l)
	}
	return sum
}
