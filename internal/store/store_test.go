package store

import (
	"testing"

	"github.com/1broseidon/zoned/internal/layout"
)

func testLayout(id string) *layout.ZoneLayout {
	return &layout.ZoneLayout{
		ID:   id,
		Name: id,
		Zones: []layout.Zone{
			{Name: "left", X: 0, Y: 0, W: 0.5, H: 1},
			{Name: "right", X: 0.5, Y: 0, W: 0.5, H: 1},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Write(testLayout("coding")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("coding")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ID != "coding" || len(got.Zones) != 2 {
		t.Fatalf("unexpected layout: %+v", got)
	}
	if got.Zones[1].X != 0.5 {
		t.Errorf("zone coordinates not preserved: %+v", got.Zones[1])
	}
}

func TestListSortedAndDelete(t *testing.T) {
	s := New(t.TempDir())
	for _, id := range []string{"zulu", "alpha", "mid"} {
		if err := s.Write(testLayout(id)); err != nil {
			t.Fatalf("Write %q: %v", id, err)
		}
	}

	ids, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 3 || ids[0] != "alpha" || ids[1] != "mid" || ids[2] != "zulu" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	if err := s.Delete("mid"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ids, err = s.List()
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 layouts after delete, got %v", ids)
	}
	if _, err := s.Read("mid"); err == nil {
		t.Fatalf("expected read of deleted layout to fail")
	}
}

func TestListEmptyStore(t *testing.T) {
	s := New(t.TempDir() + "/does-not-exist")
	ids, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no layouts, got %v", ids)
	}
}

func TestRename(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Write(testLayout("old")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Rename("old", "new"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err := s.Read("new")
	if err != nil {
		t.Fatalf("Read renamed: %v", err)
	}
	if got.ID != "new" || got.Name != "new" {
		t.Errorf("rename did not update identity: %+v", got)
	}
	if _, err := s.Read("old"); err == nil {
		t.Fatalf("expected old id to be gone")
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id   string
		ok   bool
	}{
		{"coding", true},
		{"two-col", true},
		{"", false},
		{"..", false},
		{"a/b", false},
		{"../escape", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.ok && err != nil {
				t.Errorf("ValidateID(%q) = %v, want nil", tt.id, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("ValidateID(%q) = nil, want error", tt.id)
			}
		})
	}
}
