package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/san-kum/mrua/internal/config"
	"github.com/san-kum/mrua/internal/logging"
	"github.com/san-kum/mrua/internal/motion"
)

//go:embed static
var staticFS embed.FS

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

type client struct {
	sess   *session
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

type Server struct {
	cfg      *config.Config
	clock    motion.Clock
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
}

// NewServer returns a server for cfg. A nil clock means the system clock.
func NewServer(cfg *config.Config, clock motion.Clock) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		cfg:   cfg,
		clock: clock,
		log:   logging.For("web"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[string]*client),
	}
}

func (s *Server) Handler() http.Handler {
	static, _ := fs.Sub(staticFS, "static")
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Sessions reports the number of connected clients.
func (s *Server) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ListenAndServe serves on the configured address until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Server.Addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.closeAll()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "sessions": s.Sessions()})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "error", err)
		return
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	c := &client{
		sess:   newSession(id, s.cfg, s.clock, s.log),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}
	s.register(id, c)
	s.log.Info("client connected", "session", id, "remote", r.RemoteAddr)

	go c.sess.run(ctx)
	go s.writePump(c)
	s.readPump(c)
}

func (s *Server) pongWait() time.Duration {
	return s.cfg.Server.PingInterval * 3
}

func (s *Server) readPump(c *client) {
	defer func() {
		s.unregister(c.sess.id)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(s.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(s.pongWait()))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Info("client disconnected", "session", c.sess.id)
				return
			}
			s.log.Warn("read", "session", c.sess.id, "error", err)
			return
		}

		var in ClientEnvelope
		if err := json.Unmarshal(msg, &in); err != nil {
			c.sess.push(ServerEnvelope{Type: MsgError, Message: "bad_payload"})
			continue
		}
		select {
		case c.sess.in <- in:
		default:
			c.sess.push(ServerEnvelope{Type: MsgError, Message: "busy"})
		}
	}
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(s.cfg.Server.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.sess.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte("keepalive")); err != nil {
				return
			}
		}
	}
}

func (s *Server) register(id string, c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = c
}

func (s *Server) unregister(id string) {
	s.mu.Lock()
	c, ok := s.clients[id]
	delete(s.clients, id)
	s.mu.Unlock()
	if ok {
		c.cancel()
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.clients {
		c.cancel()
		delete(s.clients, id)
	}
}
