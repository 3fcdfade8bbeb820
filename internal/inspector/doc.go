// Package inspector owns the HTTP frame-inspection surface.
//
// Ownership boundary:
// - encode/scan endpoints over hex-encoded bytes
// - health, readiness and metrics routes
// - request logging and codec metrics wiring
//
// Inspector is offline tooling around the codec; it is not a transport
// for frames and holds no buffer state between requests.
package inspector
