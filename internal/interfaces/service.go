package interfaces

// Service is an interface exposing the escrow and operator services to the
// outside. Start must not block, Stop drains in-flight requests.
type Service interface {
	Start() error
	Stop()
}
