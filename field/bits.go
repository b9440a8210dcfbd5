package field

import "fmt"

// Data conversion utilities over GF(4)

// GF4BitsPerElement is the number of bits carried by one GF(4) element
const GF4BitsPerElement = 2

// GF4DigitsPerByte is the number of GF(4) digits needed to hold a byte
const GF4DigitsPerByte = 8 / GF4BitsPerElement

// SplitBytes splits a byte slice into GF(4) digits, most significant bits first
func SplitBytes(data []byte) []GF4 {
	result := make([]GF4, 0, len(data)*GF4DigitsPerByte)
	for _, b := range data {
		for shift := 8 - GF4BitsPerElement; shift >= 0; shift -= GF4BitsPerElement {
			result = append(result, GF4{(b >> shift) & 0x3})
		}
	}
	return result
}

// JoinBytes converts GF(4) digits produced by SplitBytes back to bytes
func JoinBytes(elements []GF4) ([]byte, error) {
	if len(elements)%GF4DigitsPerByte != 0 {
		return nil, fmt.Errorf("%d digits: %w", len(elements), ErrDigitCount)
	}

	result := make([]byte, len(elements)/GF4DigitsPerByte)
	for i, e := range elements {
		shift := 8 - GF4BitsPerElement*(i%GF4DigitsPerByte+1)
		result[i/GF4DigitsPerByte] |= e.tag << shift
	}
	return result, nil
}
