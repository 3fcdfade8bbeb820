package frame

import "errors"

// Encode validation errors.
var (
	ErrEmptyPayload    = errors.New("frame: empty payload")
	ErrPayloadTooLarge = errors.New("frame: payload exceeds 127 bytes")
)

// Scan errors. Truncation errors mean the buffer ran out mid-frame;
// syntax errors mean the bytes behind a matched header are not a frame.
var (
	ErrOffsetOutOfRange      = errors.New("frame: offset beyond buffer end")
	ErrBufferTooShort        = errors.New("frame: buffer too short for any frame")
	ErrHeaderNotFound        = errors.New("frame: header not found")
	ErrTruncatedHeaderFields = errors.New("frame: length and marker do not fit in buffer")
	ErrMissingLengthFlag     = errors.New("frame: length flag bit not set")
	ErrMissingMarker         = errors.New("frame: marker byte mismatch")
	ErrTruncatedPayload      = errors.New("frame: payload tail does not fit in buffer")
	ErrChecksumMismatch      = errors.New("frame: checksum mismatch")
	ErrMissingFooter         = errors.New("frame: footer byte mismatch")
)

// ErrEmptyChecksumInput is returned by Checksum on zero-length input.
var ErrEmptyChecksumInput = errors.New("frame: checksum over empty input")

// IsTruncation reports whether err indicates the buffer was exhausted
// before a complete frame. A caller that owns a growing byte stream may
// keep the bytes and retry once more arrive.
func IsTruncation(err error) bool {
	return errors.Is(err, ErrBufferTooShort) ||
		errors.Is(err, ErrTruncatedHeaderFields) ||
		errors.Is(err, ErrTruncatedPayload)
}

// IsSyntax reports whether err indicates a structural or integrity
// mismatch behind a matched header: corruption or a false-positive header.
// The caller should resume scanning past the failed header.
func IsSyntax(err error) bool {
	return errors.Is(err, ErrMissingLengthFlag) ||
		errors.Is(err, ErrEmptyPayload) ||
		errors.Is(err, ErrMissingMarker) ||
		errors.Is(err, ErrChecksumMismatch) ||
		errors.Is(err, ErrMissingFooter)
}

// Reason returns a short stable identifier for a codec error, suitable
// for metric labels and API responses.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyPayload):
		return "empty_payload"
	case errors.Is(err, ErrPayloadTooLarge):
		return "payload_too_large"
	case errors.Is(err, ErrOffsetOutOfRange):
		return "offset_out_of_range"
	case errors.Is(err, ErrBufferTooShort):
		return "buffer_too_short"
	case errors.Is(err, ErrHeaderNotFound):
		return "header_not_found"
	case errors.Is(err, ErrTruncatedHeaderFields):
		return "truncated_header_fields"
	case errors.Is(err, ErrMissingLengthFlag):
		return "missing_length_flag"
	case errors.Is(err, ErrMissingMarker):
		return "missing_marker"
	case errors.Is(err, ErrTruncatedPayload):
		return "truncated_payload"
	case errors.Is(err, ErrChecksumMismatch):
		return "checksum_mismatch"
	case errors.Is(err, ErrMissingFooter):
		return "missing_footer"
	case errors.Is(err, ErrEmptyChecksumInput):
		return "empty_checksum_input"
	default:
		return "unknown"
	}
}
