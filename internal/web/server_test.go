package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/mrua/internal/config"
	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/motion"
)

func dial(t *testing.T) (*websocket.Conn, *Server) {
	t.Helper()
	srv := NewServer(config.DefaultConfig(), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, srv
}

// next reads messages until one of type want arrives.
func next(t *testing.T, conn *websocket.Conn, want string) ServerEnvelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg ServerEnvelope
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == want {
			return msg
		}
	}
}

func TestWelcomeAndIdleFrame(t *testing.T) {
	conn, srv := dial(t)

	welcome := next(t, conn, MsgWelcome)
	assert.NotEmpty(t, welcome.Session)
	assert.Equal(t, "idle", welcome.Phase)
	require.NotNil(t, welcome.Input)
	assert.Equal(t, "1000", welcome.Input.Total)

	frame := next(t, conn, MsgFrame)
	require.NotEmpty(t, frame.Commands)
	assert.Equal(t, draw.OpClear, frame.Commands[0].Op)
	assert.Equal(t, 1, srv.Sessions())
}

func TestStartRejectsBadInput(t *testing.T) {
	conn, _ := dial(t)
	next(t, conn, MsgWelcome)

	in := motion.Input{Velocity: "abc", Acceleration: "0", Total: "100"}
	require.NoError(t, conn.WriteJSON(ClientEnvelope{Type: MsgStart, Input: &in}))

	alert := next(t, conn, MsgAlert)
	assert.Contains(t, alert.Message, "velocity")
}

func TestRunCompletes(t *testing.T) {
	conn, _ := dial(t)
	next(t, conn, MsgWelcome)

	in := motion.Input{Velocity: "100", Acceleration: "0", Target: "0.5", Total: "1"}
	require.NoError(t, conn.WriteJSON(ClientEnvelope{Type: MsgStart, Input: &in}))

	assert.Equal(t, "running", next(t, conn, MsgPhase).Phase)

	target := next(t, conn, MsgEvent)
	assert.Equal(t, "target_reached", target.Kind)
	assert.Contains(t, target.Message, "Target distance of 0.5m reached")

	done := next(t, conn, MsgEvent)
	assert.Equal(t, "run_completed", done.Kind)
	assert.Equal(t, int64(3000), done.VisibleMS)

	require.NoError(t, conn.WriteJSON(ClientEnvelope{Type: MsgSummary}))
	sum := next(t, conn, MsgSummary)
	require.NotEmpty(t, sum.Sections)
	assert.Equal(t, "Initial parameters", sum.Sections[0].Title)
}

func TestConfigureRejectsZero(t *testing.T) {
	conn, _ := dial(t)
	next(t, conn, MsgWelcome)

	require.NoError(t, conn.WriteJSON(ClientEnvelope{Type: MsgConfigure, Total: "0"}))
	assert.NotEmpty(t, next(t, conn, MsgAlert).Message)
}

func TestUnknownMessage(t *testing.T) {
	conn, _ := dial(t)
	next(t, conn, MsgWelcome)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	assert.Equal(t, "bad_payload", next(t, conn, MsgError).Message)

	require.NoError(t, conn.WriteJSON(ClientEnvelope{Type: "dance"}))
	assert.Equal(t, "unsupported_message_type", next(t, conn, MsgError).Message)
}

func TestHealthAndIndex(t *testing.T) {
	srv := NewServer(nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])

	page, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer page.Body.Close()
	assert.Equal(t, http.StatusOK, page.StatusCode)
}

func TestLastFrame(t *testing.T) {
	cmds := []draw.Command{{Op: draw.OpClear}, {Op: draw.OpFill}, {Op: draw.OpClear}, {Op: draw.OpStroke}}
	got := lastFrame(cmds)
	assert.Len(t, got, 2)
	assert.Equal(t, draw.OpStroke, got[1].Op)
	assert.Empty(t, lastFrame(nil))
}
