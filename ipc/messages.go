package ipc

// Message types understood by the muster socket. These must stay in sync
// with any client tooling that speaks the protocol.
const (
	TypeHello   = "hello"
	TypeAck     = "ack"
	TypeRoster  = "roster"  // data: a raw roster export document
	TypeSummary = "summary" // data: the compact summary document
)

// HelloMessage identifies the client after connecting.
type HelloMessage struct {
	Client string `json:"client"`
}

type AckMessage struct {
	Status string `json:"status"`
}
