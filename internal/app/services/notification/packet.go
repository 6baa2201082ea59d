package notification

import (
	"ccsed-client/internal/pkg/constvars"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Wire format, one websocket text frame per Engine.IO packet:
//
//	0{"sid":...,"pingInterval":...,"pingTimeout":...}   open
//	2 / 3                                                ping / pong
//	40 / 40{"sid":...} / 44{"message":...}               socket.io connect / ack / error
//	42["event",payload]                                  socket.io event
//	41                                                   socket.io disconnect

var errEmptyPacket = errors.New("empty packet")

type openPayload struct {
	Sid          string `json:"sid"`
	PingInterval int    `json:"pingInterval"`
	PingTimeout  int    `json:"pingTimeout"`
}

type connectErrorPayload struct {
	Message string `json:"message"`
}

type socketPacket struct {
	Type byte
	// Namespace is empty for the default "/" namespace.
	Namespace string
	Data      []byte
}

func splitEnginePacket(raw []byte) (byte, []byte, error) {
	if len(raw) == 0 {
		return 0, nil, errEmptyPacket
	}
	return raw[0], raw[1:], nil
}

func parseOpenPayload(data []byte) (*openPayload, error) {
	open := new(openPayload)
	if err := json.Unmarshal(data, open); err != nil {
		return nil, fmt.Errorf("decode open packet: %w", err)
	}
	if open.Sid == "" {
		return nil, errors.New("open packet has no sid")
	}
	return open, nil
}

// parseSocketPacket decodes the socket.io packet inside an Engine.IO message.
// Ack ids between the namespace and the data are skipped.
func parseSocketPacket(data []byte) (*socketPacket, error) {
	if len(data) == 0 {
		return nil, errEmptyPacket
	}
	packet := &socketPacket{Type: data[0]}
	rest := data[1:]

	if len(rest) > 0 && rest[0] == '/' {
		end := 0
		for end < len(rest) && rest[end] != ',' {
			end++
		}
		if namespace := string(rest[:end]); namespace != "/" {
			packet.Namespace = namespace
		}
		if end < len(rest) {
			end++
		}
		rest = rest[end:]
	}

	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		rest = rest[1:]
	}
	packet.Data = rest
	return packet, nil
}

// decodeEventData splits ["event", payload, ...] into the event name and the
// raw first argument. A missing argument yields a nil payload.
func decodeEventData(data []byte) (string, []byte, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return "", nil, fmt.Errorf("decode event packet: %w", err)
	}
	if len(parts) == 0 {
		return "", nil, errors.New("event packet has no name")
	}
	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return "", nil, fmt.Errorf("decode event name: %w", err)
	}
	if len(parts) == 1 {
		return name, nil, nil
	}
	return name, []byte(parts[1]), nil
}

func encodeEventPacket(event string, payload interface{}) ([]byte, error) {
	args := []interface{}{event}
	if payload != nil {
		args = append(args, payload)
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	packet := make([]byte, 0, len(data)+2)
	packet = append(packet, constvars.EnginePacketMessage, constvars.SocketPacketEvent)
	return append(packet, data...), nil
}

func encodeControlPacket(engineType byte, socketType ...byte) []byte {
	return append([]byte{engineType}, socketType...)
}
