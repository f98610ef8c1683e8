package cipher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Encode/Decode Unit Tests
// =============================================================================

func TestEncode_KnownVector(t *testing.T) {
	// 123456 -> shift: 890123 -> swap(1,3): 098123 -> swap(2,4): 018923
	// -> swap(5,6): 018932
	out, err := Encode("123456")
	require.NoError(t, err)
	assert.Equal(t, "018932", out)
}

func TestDecode_KnownVector(t *testing.T) {
	out, err := Decode("018932")
	require.NoError(t, err)
	assert.Equal(t, "123456", out)
}

func TestEncode_PreservesLeadingZeros(t *testing.T) {
	out, err := Encode("000007")
	require.NoError(t, err)
	assert.Len(t, out, Length)
	// All zeros shift to 7; the final digit (7) shifts to 4 and lands
	// in position five after the 5↔6 swap.
	assert.Equal(t, "777747", out)
}

func TestDecode_PreservesLeadingZeros(t *testing.T) {
	out, err := Decode("777747")
	require.NoError(t, err)
	assert.Equal(t, "000007", out)
}

func TestEncode_AllZeros(t *testing.T) {
	out, err := Encode("000000")
	require.NoError(t, err)
	assert.Equal(t, "777777", out)
}

func TestEncode_AllNines(t *testing.T) {
	out, err := Encode("999999")
	require.NoError(t, err)
	assert.Equal(t, "666666", out)
}

func TestEncode_OutputNeverEqualsInputPosition(t *testing.T) {
	// The permutation moves every position: with a zero shift applied
	// twice (encode then decode restores digits), verify no position is
	// fixed by checking a sequence with all-distinct digits.
	out, err := Encode("012345")
	require.NoError(t, err)

	// shift: 789012, swaps -> 978021... verify against hand computation
	assert.Equal(t, "907821", out)
	for i := 0; i < Length; i++ {
		// shifted digit at i must not remain at i
		shifted := byte('0' + (i+encodeShift)%10)
		assert.NotEqual(t, shifted, out[i], "position %d not permuted", i)
	}
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestEncode_RejectsShortInput(t *testing.T) {
	_, err := Encode("12345")
	require.Error(t, err)

	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodeWrongLength, ie.Code)
	assert.Equal(t, "12345", ie.Input)
}

func TestEncode_RejectsLongInput(t *testing.T) {
	_, err := Encode("1234567")
	require.Error(t, err)

	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodeWrongLength, ie.Code)
}

func TestEncode_RejectsEmptyInput(t *testing.T) {
	_, err := Encode("")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestEncode_RejectsNonDigit(t *testing.T) {
	_, err := Encode("12a456")
	require.Error(t, err)

	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodeNonDigit, ie.Code)
	assert.Equal(t, 2, ie.Position)
}

func TestEncode_RejectsUnicodeDigits(t *testing.T) {
	// Arabic-Indic six is a digit in Unicode terms but not ASCII; it is
	// multi-byte, so it must be rejected one way or another.
	_, err := Encode("12345٦")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestDecode_RejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "12345", "1234567", "12a456", " 23456"} {
		t.Run(fmt.Sprintf("input=%q", input), func(t *testing.T) {
			_, err := Decode(input)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
		})
	}
}

func TestInvalidInputError_Message(t *testing.T) {
	_, err := Encode("999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WRONG_LENGTH")
	assert.Contains(t, err.Error(), "6 digits")
}

// =============================================================================
// Property Tests
// =============================================================================

// TestRoundTrip_Exhaustive walks the entire 10^6 input space and checks
// both inverse directions. Runs in well under a second.
func TestRoundTrip_Exhaustive(t *testing.T) {
	for n := 0; n < 1000000; n++ {
		x := fmt.Sprintf("%06d", n)

		enc, err := Encode(x)
		require.NoError(t, err)
		require.Len(t, enc, Length)

		dec, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, x, dec, "decode(encode(%s))", x)
	}
}

func TestEncodeDecode_MutuallyInverse_Sampled(t *testing.T) {
	// encode(decode(y)) == y, the opposite composition order.
	for _, y := range []string{"000000", "019283", "500000", "999999", "018932"} {
		dec, err := Decode(y)
		require.NoError(t, err)

		enc, err := Encode(dec)
		require.NoError(t, err)
		assert.Equal(t, y, enc, "encode(decode(%s))", y)
	}
}

// TestEncode_Bijection verifies injectivity over the full input space:
// one million distinct inputs must yield one million distinct outputs.
func TestEncode_Bijection(t *testing.T) {
	seen := make(map[string]string, 1000000)
	for n := 0; n < 1000000; n++ {
		x := fmt.Sprintf("%06d", n)
		enc, err := Encode(x)
		require.NoError(t, err)

		if prev, dup := seen[enc]; dup {
			t.Fatalf("collision: Encode(%s) == Encode(%s) == %s", x, prev, enc)
		}
		seen[enc] = x
	}
	assert.Len(t, seen, 1000000)
}

func TestSwapPairs_SelfInverse(t *testing.T) {
	d := [Length]byte{1, 2, 3, 4, 5, 6}
	orig := d

	swapPairs(&d)
	assert.Equal(t, [Length]byte{3, 4, 1, 2, 6, 5}, d)

	swapPairs(&d)
	assert.Equal(t, orig, d)
}

func TestDigitShift_Inverts(t *testing.T) {
	for d := byte(0); d <= 9; d++ {
		shifted := (d + encodeShift) % 10
		restored := (shifted + decodeShift) % 10
		assert.Equal(t, d, restored, "digit %d", d)
	}
}
