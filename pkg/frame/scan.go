package frame

// Result is one frame recovered from a scanned buffer. HeaderIndex is the
// offset of the 0xA5 0x5A pair; EndIndex is the offset of the footer byte,
// inclusive, so the next scan may resume at EndIndex+1.
type Result struct {
	Payload     []byte
	HeaderIndex int
	EndIndex    int
}

// Scan finds the first valid frame at or after offset and extracts its
// payload. The buffer may carry arbitrary noise before the header; the
// scanner resynchronizes on the header pair. Any structural failure after
// a header match aborts the call: a single Scan never searches past a
// matched-but-invalid header (ScanAll layers that policy on top).
func Scan(buf []byte, offset int) (Result, error) {
	if offset < 0 || offset >= len(buf) {
		return Result{}, ErrOffsetOutOfRange
	}
	// Historical threshold, kept for compatibility: rejects remainders of
	// 7 or fewer even though the true minimum frame is 8 bytes.
	if len(buf)-offset <= overhead {
		return Result{}, ErrBufferTooShort
	}

	head := indexHeader(buf, offset)
	if head < 0 {
		return Result{}, ErrHeaderNotFound
	}
	i := head + 2

	// Length field and marker must still fit.
	if len(buf)-i < 3 {
		return Result{}, ErrTruncatedHeaderFields
	}
	if buf[i]&lengthFlag == 0 {
		return Result{}, ErrMissingLengthFlag
	}
	size := int(buf[i]&0x7F)<<8 | int(buf[i+1])
	i += 2
	if size == 0 {
		return Result{}, ErrEmptyPayload
	}
	if buf[i] != Marker {
		return Result{}, ErrMissingMarker
	}
	// Payload, checksum and footer counted from the marker position.
	if len(buf)-i < size+3 {
		return Result{}, ErrTruncatedPayload
	}
	i++

	payload := make([]byte, size)
	copy(payload, buf[i:i+size])
	i += size

	if xorFold(payload)^buf[i] != 0 {
		return Result{}, ErrChecksumMismatch
	}
	i++
	if buf[i] != Footer {
		return Result{}, ErrMissingFooter
	}

	return Result{Payload: payload, HeaderIndex: head, EndIndex: i}, nil
}

// ScanAll recovers every frame in buf. On success the next scan resumes
// past the consumed frame; on a syntax failure it resumes one byte past
// the failed header, so a corrupted frame does not hide later valid ones.
// Truncation at the buffer tail ends the pass.
func ScanAll(buf []byte) []Result {
	var out []Result
	offset := 0
	for offset < len(buf) {
		res, err := Scan(buf, offset)
		if err == nil {
			out = append(out, res)
			offset = res.EndIndex + 1
			continue
		}
		if !IsSyntax(err) {
			break
		}
		head := indexHeader(buf, offset)
		if head < 0 {
			break
		}
		offset = head + 1
	}
	return out
}

func indexHeader(buf []byte, offset int) int {
	for i := offset; i+1 < len(buf); i++ {
		if buf[i] == HeaderByte0 && buf[i+1] == HeaderByte1 {
			return i
		}
	}
	return -1
}
