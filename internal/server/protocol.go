package server

import (
	_ "embed"
	"encoding/json"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/errors"
)

// Message types exchanged over the WebSocket.
const (
	MsgEvent  = "event"
	MsgAction = "action"
	MsgRender = "render"
	MsgError  = "error"
)

// ClientMessage is sent by the browser.
//
//	{"type": "event", "seq": 4, "hid": "h12", "event": "click"}
//	{"type": "event", "seq": 5, "hid": "h30", "event": "input", "value": "120"}
//	{"type": "action", "action": {"type": "set-dark", "on": true}}
type ClientMessage struct {
	Type   string          `json:"type"`
	Seq    uint64          `json:"seq,omitempty"`
	HID    string          `json:"hid,omitempty"`
	Event  string          `json:"event,omitempty"`
	Value  string          `json:"value,omitempty"`
	Action *builder.Action `json:"action,omitempty"`
}

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type    string `json:"type"`
	Seq     uint64 `json:"seq,omitempty"`
	HTML    string `json:"html,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func renderMessage(f Frame) ServerMessage {
	return ServerMessage{Type: MsgRender, Seq: f.Seq, HTML: f.HTML}
}

func errorMessage(err error) ServerMessage {
	fe := errors.FromError(err, "E506")
	msg := fe.Message
	if fe.Detail != "" {
		msg += ": " + fe.Detail
	}
	return ServerMessage{Type: MsgError, Code: fe.Code, Message: msg}
}

// decodeClientMessage parses and checks a client message.
func decodeClientMessage(data []byte) (ClientMessage, error) {
	var m ClientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return m, errors.New("E503").WithDetail("message is not valid JSON").Wrap(err)
	}
	switch m.Type {
	case MsgEvent:
		if m.HID == "" || m.Event == "" {
			return m, errors.New("E503").WithDetail("event messages need hid and event")
		}
	case MsgAction:
		if m.Action == nil {
			return m, errors.New("E503").WithDetail("action messages need an action")
		}
	default:
		return m, errors.New("E503").WithDetailf("unknown message type %q", m.Type)
	}
	return m, nil
}

//go:embed client.js
var clientScript string
