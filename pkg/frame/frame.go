package frame

// Wire layout:
//
//	[0xA5 0x5A][len_hi len_lo][0xA0][payload...][checksum][0x04]
//
// len is big-endian with the top bit of len_hi forced to 1; the flag bit
// doubles as a framing discriminator on the decode side. checksum is the
// XOR of all payload bytes.
const (
	HeaderByte0 byte = 0xA5
	HeaderByte1 byte = 0x5A
	Marker      byte = 0xA0
	Footer      byte = 0x04

	// MaxPayloadLen is the encode-side payload cap. The length field
	// carries 15 bits on the wire, but transmitters stay within the low
	// 7 bits.
	MaxPayloadLen = 0x7F

	lengthFlag byte = 0x80

	// header(2) + length(2) + marker(1) + checksum(1) + footer(1)
	overhead = 7
)

// Encode builds a complete frame around payload. The returned slice is
// freshly allocated and the payload bytes are copied into it.
func Encode(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if len(payload) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}

	f := make([]byte, 0, len(payload)+overhead)
	f = append(f, HeaderByte0, HeaderByte1)
	f = append(f, lengthFlag|byte(len(payload)>>8), byte(len(payload)))
	f = append(f, Marker)
	f = append(f, payload...)
	f = append(f, xorFold(payload))
	f = append(f, Footer)
	return f, nil
}

// Checksum XOR-folds data into a single byte. Fails on empty input;
// encoder and scanner only fold after length validation.
func Checksum(data []byte) (byte, error) {
	if len(data) == 0 {
		return 0, ErrEmptyChecksumInput
	}
	return xorFold(data), nil
}

func xorFold(data []byte) byte {
	sum := data[0]
	for _, b := range data[1:] {
		sum ^= b
	}
	return sum
}
