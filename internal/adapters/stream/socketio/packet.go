package socketio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/goccy/go-json"
)

// Engine.IO v4 packet types.
const (
	engineOpen    byte = '0'
	engineClose   byte = '1'
	enginePing    byte = '2'
	enginePong    byte = '3'
	engineMessage byte = '4'
	engineNoop    byte = '6'
)

// Socket.IO v5 packet types, carried inside an Engine.IO message.
const (
	socketConnect      byte = '0'
	socketDisconnect   byte = '1'
	socketEvent        byte = '2'
	socketConnectError byte = '4'
)

var (
	errNotAnEvent   = errors.New("not an event packet")
	errUnknownEvent = errors.New("unknown event")
)

type eventPayload struct {
	Success bool   `json:"success"`
	RunID   string `json:"run_id"`
}

// connectPacket is what the client sends to join the default namespace.
func connectPacket() string {
	return string([]byte{engineMessage, socketConnect})
}

func pongPacket() string {
	return string(enginePong)
}

// splitSocketPacket strips the Engine.IO message type and returns the Socket.IO
// packet type plus its remaining body.
func splitSocketPacket(raw string) (byte, string, error) {
	if len(raw) < 2 || raw[0] != engineMessage {
		return 0, "", errNotAnEvent
	}

	return raw[1], raw[2:], nil
}

// decodeEvent parses the body of a Socket.IO EVENT packet such as
// `/status,12["inference_start",{"success":true}]`.
func decodeEvent(body string) (domain.StatusEvent, error) {
	if strings.HasPrefix(body, "/") {
		comma := strings.IndexByte(body, ',')
		if comma < 0 {
			return domain.StatusEvent{}, fmt.Errorf("namespace without separator: %q", body)
		}
		body = body[comma+1:]
	}
	body = strings.TrimLeft(body, "0123456789")

	var args []json.RawMessage
	if err := json.Unmarshal([]byte(body), &args); err != nil {
		return domain.StatusEvent{}, fmt.Errorf("decode event arguments: %w", err)
	}
	if len(args) == 0 {
		return domain.StatusEvent{}, errNotAnEvent
	}

	var name string
	if err := json.Unmarshal(args[0], &name); err != nil {
		return domain.StatusEvent{}, fmt.Errorf("decode event name: %w", err)
	}

	phase, ok := domain.ParseJobPhase(name)
	if !ok {
		return domain.StatusEvent{}, fmt.Errorf("%w: %s", errUnknownEvent, name)
	}

	var payload eventPayload
	if len(args) > 1 {
		if err := json.Unmarshal(args[1], &payload); err != nil {
			return domain.StatusEvent{}, fmt.Errorf("decode %s payload: %w", name, err)
		}
	}

	return domain.StatusEvent{Phase: phase, Success: payload.Success, RunID: payload.RunID}, nil
}
