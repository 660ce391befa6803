package wire

import "errors"

// Length-prefix decode errors.
var (
	// ErrNeedMoreData indicates the buffer does not yet contain a complete
	// length prefix; the caller should retry once more bytes arrive.
	ErrNeedMoreData = errors.New("wire: need more data")

	// ErrInvalidLengthPrefix indicates a leading byte that does not match
	// any of the defined length-prefix widths.
	ErrInvalidLengthPrefix = errors.New("wire: invalid length prefix")
)

// EncodeLength encodes l as a RouterOS variable-length integer (1-5 bytes).
func EncodeLength(l uint32) []byte {
	switch {
	case l < 0x80:
		return []byte{byte(l)}
	case l < 0x4000:
		return []byte{
			byte(l>>8) | 0x80,
			byte(l),
		}
	case l < 0x200000:
		return []byte{
			byte(l>>16) | 0xC0,
			byte(l >> 8),
			byte(l),
		}
	case l < 0x10000000:
		return []byte{
			byte(l>>24) | 0xE0,
			byte(l >> 16),
			byte(l >> 8),
			byte(l),
		}
	default:
		return []byte{
			0xF0,
			byte(l >> 24),
			byte(l >> 16),
			byte(l >> 8),
			byte(l),
		}
	}
}

// DecodeLength decodes a RouterOS variable-length integer from the front of
// b. It returns the decoded value and the number of bytes it occupies.
// ErrNeedMoreData is returned (not a decode error) when b is too short to
// contain the width indicated by its leading byte.
func DecodeLength(b []byte) (value uint32, width int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrNeedMoreData
	}

	first := b[0]

	switch {
	case first == 0:
		return 0, 1, nil

	case first&0x80 == 0:
		return uint32(first), 1, nil

	case first&0xC0 == 0x80:
		if len(b) < 2 {
			return 0, 0, ErrNeedMoreData
		}
		value = uint32(first&0x3F)<<8 | uint32(b[1])
		return value, 2, nil

	case first&0xE0 == 0xC0:
		if len(b) < 3 {
			return 0, 0, ErrNeedMoreData
		}
		value = uint32(first&0x1F)<<16 | uint32(b[1])<<8 | uint32(b[2])
		return value, 3, nil

	case first&0xF0 == 0xE0:
		if len(b) < 4 {
			return 0, 0, ErrNeedMoreData
		}
		value = uint32(first&0x0F)<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		return value, 4, nil

	case first == 0xF0:
		if len(b) < 5 {
			return 0, 0, ErrNeedMoreData
		}
		value = uint32(b[1])<<24 | uint32(b[2])<<16 | uint32(b[3])<<8 | uint32(b[4])
		return value, 5, nil

	default:
		return 0, 0, ErrInvalidLengthPrefix
	}
}
