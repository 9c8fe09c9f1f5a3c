package ipc

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/1broseidon/zoned/internal/config"
	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return &Server{
		cfg:       config.DefaultConfig(),
		layouts:   store.New(t.TempDir()),
		startTime: time.Now(),
	}
}

func mustPayload(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return data
}

func TestHandleCommand_UnknownCommand(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleCommand(&Request{Command: "NOPE"})
	if resp.Status != "ERROR" {
		t.Fatalf("expected ERROR, got %+v", resp)
	}
}

func TestHandleCommand_ListLayoutsIncludesBuiltins(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleCommand(&Request{Command: CommandListLayouts})
	if resp.Status != "OK" {
		t.Fatalf("expected OK, got %+v", resp)
	}
	var data LayoutsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("parse data: %v", err)
	}
	found := false
	for _, n := range data.Builtin {
		if n == "halves" {
			found = true
		}
	}
	if !found {
		t.Errorf("builtin listing missing halves: %v", data.Builtin)
	}
	if data.DefaultLayout != "halves" {
		t.Errorf("expected default halves, got %q", data.DefaultLayout)
	}
}

func TestHandleCommand_SaveAndGetLayout(t *testing.T) {
	s := newTestServer(t)

	zl := layout.ZoneLayout{
		ID:   "two-col",
		Name: "Two Columns",
		Zones: []layout.Zone{
			{X: 0, Y: 0, W: 0.4, H: 1},
			{X: 0.4, Y: 0, W: 0.6, H: 1},
		},
	}
	resp := s.handleCommand(&Request{
		Command: CommandSaveLayout,
		Payload: mustPayload(t, SaveLayoutPayload{Layout: zl}),
	})
	if resp.Status != "OK" {
		t.Fatalf("save failed: %+v", resp)
	}

	resp = s.handleCommand(&Request{
		Command: CommandGetLayout,
		Payload: mustPayload(t, GetLayoutPayload{Name: "two-col"}),
	})
	if resp.Status != "OK" {
		t.Fatalf("get failed: %+v", resp)
	}
	var got layout.ZoneLayout
	if err := json.Unmarshal(resp.Data, &got); err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	if got.Name != "Two Columns" || len(got.Zones) != 2 {
		t.Errorf("unexpected layout: %+v", got)
	}
}

func TestHandleCommand_GetLayoutFallsBackToBuiltin(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleCommand(&Request{
		Command: CommandGetLayout,
		Payload: mustPayload(t, GetLayoutPayload{Name: "quarters"}),
	})
	if resp.Status != "OK" {
		t.Fatalf("expected builtin fallback, got %+v", resp)
	}
	var got layout.ZoneLayout
	if err := json.Unmarshal(resp.Data, &got); err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	if len(got.Zones) != 4 {
		t.Errorf("expected 4 zones in quarters, got %d", len(got.Zones))
	}
}

func TestHandleCommand_DeleteUnknownLayout(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleCommand(&Request{
		Command: CommandDeleteLayout,
		Payload: mustPayload(t, DeleteLayoutPayload{Name: "missing"}),
	})
	if resp.Status != "ERROR" {
		t.Fatalf("expected ERROR for deleting missing layout, got %+v", resp)
	}
}

func TestHandleCommand_ConcurrentListAndSetDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := newTestServer(t)

	payloads := []json.RawMessage{
		mustPayload(t, SetDefaultLayoutPayload{Name: "quarters"}),
		mustPayload(t, SetDefaultLayoutPayload{Name: "halves"}),
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				resp := s.handleCommand(&Request{Command: CommandListLayouts})
				if resp.Status != "OK" {
					t.Errorf("list failed: %+v", resp)
					return
				}
			}
		}()
	}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				resp := s.handleCommand(&Request{
					Command: CommandSetDefaultLayout,
					Payload: payloads[(i+j)%len(payloads)],
				})
				if resp.Status != "OK" {
					t.Errorf("set default failed: %+v", resp)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	resp := s.handleCommand(&Request{Command: CommandListLayouts})
	var data LayoutsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("parse data: %v", err)
	}
	if data.DefaultLayout != "halves" && data.DefaultLayout != "quarters" {
		t.Errorf("unexpected default after concurrent updates: %q", data.DefaultLayout)
	}
}
