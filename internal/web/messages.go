package web

import (
	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/notify"
)

// Client message types.
const (
	MsgStart     = "start"
	MsgToggle    = "toggle"
	MsgConfigure = "configure"
	MsgSummary   = "summary"
	MsgPing      = "ping"
)

// Server message types.
const (
	MsgWelcome = "welcome"
	MsgFrame   = "frame"
	MsgEvent   = "event"
	MsgPhase   = "phase"
	MsgAlert   = "alert"
	MsgPong    = "pong"
	MsgError   = "error"
)

type ClientEnvelope struct {
	Type  string        `json:"type"`
	Input *motion.Input `json:"input,omitempty"`
	Total string        `json:"total,omitempty"`
}

type ServerEnvelope struct {
	Type      string           `json:"type"`
	Session   string           `json:"session,omitempty"`
	Phase     string           `json:"phase,omitempty"`
	Commands  []draw.Command   `json:"commands,omitempty"`
	Kind      string           `json:"kind,omitempty"`
	Event     *motion.Event    `json:"event,omitempty"`
	Message   string           `json:"message,omitempty"`
	Sections  []notify.Section `json:"sections,omitempty"`
	Input     *motion.Input    `json:"input,omitempty"`
	VisibleMS int64            `json:"visible_ms,omitempty"`
	FadeMS    int64            `json:"fade_ms,omitempty"`
	ServerMS  int64            `json:"server_ms,omitempty"`
}
