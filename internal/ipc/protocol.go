package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/zoned/internal/layout"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandPing             CommandType = "PING"
	CommandGetStatus        CommandType = "GET_STATUS"
	CommandListLayouts      CommandType = "LIST_LAYOUTS"
	CommandGetLayout        CommandType = "GET_LAYOUT"
	CommandSaveLayout       CommandType = "SAVE_LAYOUT"
	CommandDeleteLayout     CommandType = "DELETE_LAYOUT"
	CommandSetDefaultLayout CommandType = "SET_DEFAULT_LAYOUT"
	CommandReload           CommandType = "RELOAD"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	DefaultLayout string `json:"default_layout"`
	LayoutCount   int    `json:"layout_count"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	DaemonRunning bool   `json:"daemon_running"`
}

// LayoutsData represents the data returned by LIST_LAYOUTS
type LayoutsData struct {
	Builtin       []string `json:"builtin"`
	Stored        []string `json:"stored"`
	DefaultLayout string   `json:"default_layout"`
}

// GetLayoutPayload represents the payload for GET_LAYOUT
type GetLayoutPayload struct {
	Name string `json:"name"`
}

// SaveLayoutPayload represents the payload for SAVE_LAYOUT
type SaveLayoutPayload struct {
	Layout layout.ZoneLayout `json:"layout"`
}

// DeleteLayoutPayload represents the payload for DELETE_LAYOUT
type DeleteLayoutPayload struct {
	Name string `json:"name"`
}

// SetDefaultLayoutPayload represents the payload for SET_DEFAULT_LAYOUT
type SetDefaultLayoutPayload struct {
	Name string `json:"name"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
