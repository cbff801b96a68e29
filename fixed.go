package deflate

// The fixed literal/length and distance code length vectors, per
// RFC 1951 §3.2.6, and the canonical codes derived from them. Both are
// built once at package init time by feeding the length vectors
// through GenerateCode — the fixed tables are a consumer of the
// general-purpose builder, not a hand-transcribed table, which is also
// how generate_fixed_code in the reference implementation treats them.
var (
	FixedLiteralCode  []CodeEntry
	FixedDistanceCode []CodeEntry
)

func init() {
	var err error
	FixedLiteralCode, err = GenerateCode(fixedLiteralLengths())
	if err != nil {
		panic("deflate: fixed literal/length code is malformed: " + err.Error())
	}
	FixedDistanceCode, err = GenerateCode(fixedDistanceLengths())
	if err != nil {
		panic("deflate: fixed distance code is malformed: " + err.Error())
	}
}

// fixedLiteralLengths builds the 288-entry literal/length code length
// vector: 8 bits for symbols 0..143, 9 bits for 144..255, 7 bits for
// 256..279, 8 bits for 280..287.
func fixedLiteralLengths() []uint8 {
	lengths := make([]uint8, 288)
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	return lengths
}

// fixedDistanceLengths builds the 32-entry distance code length
// vector: every distance symbol is 5 bits in fixed mode.
func fixedDistanceLengths() []uint8 {
	lengths := make([]uint8, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}
