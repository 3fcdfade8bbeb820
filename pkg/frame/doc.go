// Package frame owns the serial-link packet wire contract.
//
// Ownership boundary:
// - byte-exact frame construction
// - tolerant buffer scanning with header resynchronization
// - XOR checksum primitive
//
// Frame does not read from transports. Callers own the byte stream and
// decide, from the error class, whether to wait for more bytes or to
// resume scanning past a corrupted header.
package frame
