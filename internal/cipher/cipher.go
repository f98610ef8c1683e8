package cipher

// Length is the fixed width of every value this package accepts and
// produces.
const Length = 6

// encodeShift and decodeShift are additive inverses mod 10. The decode
// side uses +3 rather than -7 to keep the arithmetic non-negative.
const (
	encodeShift = 7
	decodeShift = 3
)

// Encode transforms a six-digit string into its encoded form: each
// digit is shifted by +7 mod 10, then positions are swapped pairwise
// (1↔3, 2↔4, 5↔6). The result is always exactly six digits, with
// leading zeros preserved.
//
// Returns *InvalidInputError if s is not exactly six ASCII digits.
func Encode(s string) (string, error) {
	digits, err := parse(s)
	if err != nil {
		return "", err
	}
	for i := range digits {
		digits[i] = (digits[i] + encodeShift) % 10
	}
	swapPairs(&digits)
	return render(digits), nil
}

// Decode inverts Encode: the pairwise swap is applied first (it is
// composed of disjoint transpositions, so applying it again restores
// the original order), then each digit is shifted by +3 mod 10.
//
// Decode is defined over all six-digit strings, not only genuine
// Encode outputs; Decode(Encode(x)) == x and Encode(Decode(y)) == y
// for every valid x and y.
//
// Returns *InvalidInputError if s is not exactly six ASCII digits.
func Decode(s string) (string, error) {
	digits, err := parse(s)
	if err != nil {
		return "", err
	}
	swapPairs(&digits)
	for i := range digits {
		digits[i] = (digits[i] + decodeShift) % 10
	}
	return render(digits), nil
}

// swapPairs applies the fixed position permutation: first↔third,
// second↔fourth, fifth↔sixth. Self-inverse.
func swapPairs(d *[Length]byte) {
	d[0], d[2] = d[2], d[0]
	d[1], d[3] = d[3], d[1]
	d[4], d[5] = d[5], d[4]
}

// parse validates s and converts it to digit values 0–9.
func parse(s string) ([Length]byte, error) {
	var digits [Length]byte
	if len(s) != Length {
		return digits, newWrongLengthError(s)
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return digits, newNonDigitError(s, i)
		}
		digits[i] = c - '0'
	}
	return digits, nil
}

// render converts digit values back to the fixed-width string form.
func render(digits [Length]byte) string {
	var out [Length]byte
	for i, d := range digits {
		out[i] = d + '0'
	}
	return string(out[:])
}
