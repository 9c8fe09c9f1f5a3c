package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

func (c *Client) sendWithPayload(cmd CommandType, payload interface{}) (*Response, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		raw = data
	}
	return c.sendRequest(&Request{Command: cmd, Payload: raw})
}

// Ping checks whether the daemon is reachable.
func (c *Client) Ping() error {
	_, err := c.sendRequest(&Request{Command: CommandPing})
	return err
}

// GetStatus fetches daemon status.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}
	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status: %w", err)
	}
	return &status, nil
}

// ListLayouts fetches the merged layout library listing.
func (c *Client) ListLayouts() (*LayoutsData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandListLayouts})
	if err != nil {
		return nil, err
	}
	var data LayoutsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse layouts: %w", err)
	}
	return &data, nil
}

// GetLayout fetches one layout by name.
func (c *Client) GetLayout(name string) (*layout.ZoneLayout, error) {
	resp, err := c.sendWithPayload(CommandGetLayout, GetLayoutPayload{Name: name})
	if err != nil {
		return nil, err
	}
	var zl layout.ZoneLayout
	if err := json.Unmarshal(resp.Data, &zl); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return &zl, nil
}

// SaveLayout stores a layout through the daemon.
func (c *Client) SaveLayout(zl *layout.ZoneLayout) error {
	_, err := c.sendWithPayload(CommandSaveLayout, SaveLayoutPayload{Layout: *zl})
	return err
}

// DeleteLayout removes a stored layout through the daemon.
func (c *Client) DeleteLayout(name string) error {
	_, err := c.sendWithPayload(CommandDeleteLayout, DeleteLayoutPayload{Name: name})
	return err
}

// SetDefaultLayout sets and persists the default layout.
func (c *Client) SetDefaultLayout(name string) error {
	_, err := c.sendWithPayload(CommandSetDefaultLayout, SetDefaultLayoutPayload{Name: name})
	return err
}

// Reload asks the daemon to reload its configuration.
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}
