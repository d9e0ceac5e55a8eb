// Package stream serves frames to browsers over a websocket and takes
// pointer input back from them.
package stream

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"spheretrace/internal/mathutil"
	"spheretrace/internal/output"
	"spheretrace/internal/raster"
	"spheretrace/internal/scene"
)

// Options configures a Server.
type Options struct {
	Width  int
	Height int
	Format output.Format // png or webp
	MaxFPS int           // 0 does not pace frames
}

// Server is a frameloop.Surface and frameloop.InputSource backed by every
// connected viewer.
type Server struct {
	opts     Options
	fb       *raster.FrameBuffer
	events   chan scene.Event
	upgrader websocket.Upgrader
	pace     *time.Ticker

	lock    sync.Mutex
	clients map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// inputMessage is what the viewer page sends.
type inputMessage struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// NewServer returns a server with no viewers.
func NewServer(opts Options) *Server {
	if opts.Format == "" {
		opts.Format = output.WebP
	}
	s := &Server{
		opts:    opts,
		fb:      raster.NewFrameBuffer(opts.Width, opts.Height),
		events:  make(chan scene.Event, 64),
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	if opts.MaxFPS > 0 {
		s.pace = time.NewTicker(time.Second / time.Duration(opts.MaxFPS))
	}
	return s
}

// Handler serves the viewer page at / and the socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/", s.serveViewer)
	return mux
}

// Clients returns the number of connected viewers.
func (s *Server) Clients() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.clients)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("stream: upgrade:", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 4)}
	s.lock.Lock()
	s.clients[c] = true
	s.lock.Unlock()

	go s.readLoop(c)
	go s.writeLoop(c)
}

func (s *Server) readLoop(c *client) {
	defer s.drop(c)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		ev, ok := decodeInput(msg)
		if !ok {
			continue
		}
		select {
		case s.events <- ev:
		default:
		}
	}
}

func (s *Server) writeLoop(c *client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case frame, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

func (s *Server) drop(c *client) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.clients[c] {
		delete(s.clients, c)
		close(c.send)
	}
}

func decodeInput(msg []byte) (scene.Event, bool) {
	var in inputMessage
	if err := json.Unmarshal(msg, &in); err != nil {
		return scene.Event{}, false
	}
	kind, err := scene.ParseEventKind(in.Kind)
	if err != nil {
		return scene.Event{}, false
	}
	return scene.Event{Kind: kind, X: in.X, Y: in.Y}, true
}

// PollInput returns one pending viewer event without blocking.
func (s *Server) PollInput() (scene.Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	default:
		return scene.Event{}, false
	}
}

func (s *Server) PutPixel(x, y int, c mathutil.Vec3) {
	s.fb.PutPixel(x, y, c)
}

// PresentFrame encodes the frame once and offers it to every viewer.
// Viewers that are still busy with an earlier frame skip this one.
func (s *Server) PresentFrame() error {
	if s.pace != nil {
		<-s.pace.C
	}
	if s.Clients() == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, s.fb.View(), s.opts.Format); err != nil {
		return err
	}
	frame := buf.Bytes()

	s.lock.Lock()
	defer s.lock.Unlock()
	for c := range s.clients {
		select {
		case c.send <- frame:
		default:
		}
	}
	return nil
}

// Close disconnects every viewer.
func (s *Server) Close() {
	s.lock.Lock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
	s.lock.Unlock()
	if s.pace != nil {
		s.pace.Stop()
	}
}
