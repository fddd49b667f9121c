package conv

const hexd = "0123456789ABCDEF"

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte {
	return hexDigits(buf, uint64(n), 8)
}

// U8Hex writes 2-digit uppercase hex without 0x, zero-padded.
func U8Hex(buf []byte, n uint8) []byte {
	return hexDigits(buf, uint64(n), 2)
}

func hexDigits(buf []byte, n uint64, digits int) []byte {
	if len(buf) < digits {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < digits; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Hex32 returns "0x" followed by 8 hex digits.
func Hex32(n uint32) string {
	var b [10]byte
	b[0], b[1] = '0', 'x'
	U32Hex(b[2:], n)
	return string(b[:])
}

// Hex8 returns "0x" followed by 2 hex digits.
func Hex8(n uint8) string {
	var b [4]byte
	b[0], b[1] = '0', 'x'
	U8Hex(b[2:], n)
	return string(b[:])
}

// HexN returns the low digits hex digits of n without a prefix.
func HexN(n uint64, digits int) string {
	var b [16]byte
	if digits > len(b) {
		digits = len(b)
	}
	return string(hexDigits(b[:digits], n, digits))
}

// Dec returns the base-10 form of n.
func Dec(n int) string {
	var b [21]byte
	i := len(b)
	u := uint64(n)
	if n < 0 {
		u = uint64(-int64(n))
	}
	for {
		i--
		b[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	if n < 0 {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}
