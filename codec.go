package blockrsa

import (
	"fmt"
	"strings"

	"github.com/vdparikh/blockrsa/subtle"
)

const (
	// DigitsPerChar is the fixed decimal width of one encoded character.
	DigitsPerChar = 3

	// MaxCodePoint is the largest code point a 3-digit field can carry.
	MaxCodePoint = 999
)

// EncodeMessage converts text into a single integer by writing each
// character's code point as exactly three decimal digits, first character
// most significant. "HI" encodes to 072073, i.e. 72073. Empty text encodes
// to zero.
//
// Characters above MaxCodePoint fail with ErrInvalidInput rather than
// overflowing into their neighbours.
func EncodeMessage(text string) (*subtle.Nat, error) {
	if err := checkCodePoints(text); err != nil {
		return nil, err
	}
	digits := make([]uint8, 0, len(text)*DigitsPerChar)
	for _, char := range text {
		digits = append(digits, uint8(char/100), uint8(char/10%10), uint8(char%10))
	}
	return subtle.NatFromDigits(digits)
}

func checkCodePoints(text string) error {
	pos := 0
	for _, char := range text {
		if char > MaxCodePoint {
			return fmt.Errorf("%w: character %q at position %d has code point %d (maximum %d)",
				ErrInvalidInput, char, pos, char, MaxCodePoint)
		}
		pos++
	}
	return nil
}

// DecodeMessage converts an encoded integer back into text.
//
// When charCount is positive the value is left-padded with zeros to exactly
// 3·charCount digits, so leading characters with small code points (including
// U+0000) are restored; a value needing more digits fails with
// ErrInvalidInput. Nothing is stripped in this case: a count wider than the
// encoded text returns one leading U+0000 per extra character.
//
// When charCount is zero the width is unknown: the value is padded to whole
// 3-digit groups and leading U+0000 characters are dropped as padding.
func DecodeMessage(value *subtle.Nat, charCount int) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: value is required", ErrInvalidArgument)
	}
	if charCount < 0 {
		return "", fmt.Errorf("%w: character count must not be negative, got %d", ErrInvalidArgument, charCount)
	}

	digits := value.Digits()
	width := charCount * DigitsPerChar
	if charCount == 0 {
		width = (len(digits) + DigitsPerChar - 1) / DigitsPerChar * DigitsPerChar
	}
	if len(digits) > width {
		return "", fmt.Errorf("%w: value has %d digits, more than the %d allowed for %d characters",
			ErrInvalidInput, len(digits), width, charCount)
	}

	padded := make([]uint8, width)
	copy(padded[width-len(digits):], digits)

	var b strings.Builder
	for i := 0; i < width; i += DigitsPerChar {
		code := int(padded[i])*100 + int(padded[i+1])*10 + int(padded[i+2])
		b.WriteRune(rune(code))
	}

	if charCount == 0 {
		return strings.TrimLeft(b.String(), "\x00"), nil
	}
	return b.String(), nil
}
