// Package service hosts the socket-facing side of muster: one session per
// connection, converting submitted rosters and replying with the summary.
package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/tinwell/muster/extract"
	"github.com/tinwell/muster/ipc"
)

// Session owns the conversion workflow for a single client connection.
type Session struct {
	Conn   *ipc.Connection
	Client string
}

func New(conn *ipc.Connection) *Session {
	return &Session{Conn: conn}
}

// HandleHello completes the handshake so the client knows the service is ready.
func (s *Session) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	s.Client = hello.Client
	s.Conn.Client = hello.Client
	slog.Info("client identified", "client", s.Client)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleRoster runs the full extraction over a submitted roster export and
// replies with the compact summary.
func (s *Session) HandleRoster(env ipc.Envelope) (*ipc.Envelope, error) {
	if !gjson.ValidBytes(env.Data) {
		return nil, fmt.Errorf("roster payload is not valid JSON")
	}
	doc := gjson.ParseBytes(env.Data)

	out := extract.Extract(doc)
	slog.Info("roster converted",
		"client", s.Client,
		"army", out.ArmyName,
		"faction", out.Faction,
		"points", out.PointsTotal,
		"units", len(out.Units),
		"rules", len(out.Rules),
		"abilities", len(out.Abilities),
	)

	resp, err := ipc.NewEnvelope(ipc.TypeSummary, out)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
