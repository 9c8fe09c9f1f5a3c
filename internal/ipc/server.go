package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/1broseidon/zoned/internal/config"
	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/runtimepath"
	"github.com/1broseidon/zoned/internal/store"
)

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	cfg          *config.Config
	cfgMu        sync.RWMutex
	layouts      *store.Store
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(cfg *config.Config, layouts *store.Store) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		cfg:        cfg,
		layouts:    layouts,
		startTime:  time.Now(),
	}, nil
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s", s.socketPath)

	go s.acceptLoop()

	return nil
}

// Stop shuts the server down and removes the socket.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			log.Printf("IPC accept error: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

func (s *Server) sendError(conn net.Conn, msg string) {
	resp := NewErrorResponse(msg)
	data, err := resp.Marshal()
	if err != nil {
		return
	}
	conn.Write(append(data, '\n'))
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandPing:
		resp, _ := NewOKResponse(nil)
		return resp
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandListLayouts:
		return s.handleListLayouts()
	case CommandGetLayout:
		return s.handleGetLayout(req.Payload)
	case CommandSaveLayout:
		return s.handleSaveLayout(req.Payload)
	case CommandDeleteLayout:
		return s.handleDeleteLayout(req.Payload)
	case CommandSetDefaultLayout:
		return s.handleSetDefaultLayout(req.Payload)
	case CommandReload:
		return s.handleReload()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

func (s *Server) handleGetStatus() *Response {
	s.cfgMu.RLock()
	defaultLayout := s.cfg.DefaultLayout
	s.cfgMu.RUnlock()

	stored, err := s.layouts.List()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to list layouts: %v", err))
	}

	status := StatusData{
		DefaultLayout: defaultLayout,
		LayoutCount:   len(config.BuiltinLayouts()) + len(stored),
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		DaemonRunning: true,
	}

	resp, _ := NewOKResponse(status)
	return resp
}

func (s *Server) handleListLayouts() *Response {
	// Copy everything out while holding the lock; SET_DEFAULT_LAYOUT and
	// RELOAD mutate the config from other connection goroutines.
	s.cfgMu.RLock()
	builtin := s.cfg.LayoutNames()
	defaultLayout := s.cfg.DefaultLayout
	s.cfgMu.RUnlock()

	stored, err := s.layouts.List()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to list layouts: %v", err))
	}

	data := LayoutsData{
		Builtin:       builtin,
		Stored:        stored,
		DefaultLayout: defaultLayout,
	}

	resp, _ := NewOKResponse(data)
	return resp
}

func (s *Server) handleGetLayout(payload json.RawMessage) *Response {
	var p GetLayoutPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid payload: %v", err))
	}

	zl, err := s.resolveLayout(p.Name)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	resp, err := NewOKResponse(zl)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

// resolveLayout looks a layout up in the store first, then in builtin and
// inline config layouts.
func (s *Server) resolveLayout(name string) (*layout.ZoneLayout, error) {
	if zl, err := s.layouts.Read(name); err == nil {
		return zl, nil
	}

	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.GetLayout(name)
}

func (s *Server) handleSaveLayout(payload json.RawMessage) *Response {
	var p SaveLayoutPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid payload: %v", err))
	}

	// Converting before saving catches layouts whose zones would not
	// survive an edit session.
	if _, report := layout.ZonesToEdges(&p.Layout); !report.Clean() {
		return NewErrorResponse(fmt.Sprintf("layout has unresolvable zones: %+v", report.Dropped))
	}

	if err := s.layouts.Write(&p.Layout); err != nil {
		return NewErrorResponse(err.Error())
	}

	log.Printf("IPC: saved layout %q (%d zones)", p.Layout.ID, len(p.Layout.Zones))
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleDeleteLayout(payload json.RawMessage) *Response {
	var p DeleteLayoutPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid payload: %v", err))
	}
	if err := s.layouts.Delete(p.Name); err != nil {
		return NewErrorResponse(err.Error())
	}
	log.Printf("IPC: deleted layout %q", p.Name)
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleSetDefaultLayout(payload json.RawMessage) *Response {
	var p SetDefaultLayoutPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid payload: %v", err))
	}

	if _, err := s.resolveLayout(p.Name); err != nil {
		return NewErrorResponse(err.Error())
	}

	s.cfgMu.Lock()
	s.cfg.DefaultLayout = p.Name
	err := s.cfg.Save()
	s.cfgMu.Unlock()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to persist default layout: %v", err))
	}

	log.Printf("IPC: default layout set to %q", p.Name)
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleReload() *Response {
	log.Println("IPC: Received RELOAD command")

	newCfg, err := config.Load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}

	s.cfgMu.Lock()
	s.cfg = newCfg
	s.cfgMu.Unlock()

	log.Println("IPC: Config reloaded successfully")

	resp, _ := NewOKResponse(nil)
	return resp
}
