package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_BuildsEveryRegisteredScene(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 64, 48)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.World == nil || s.Camera == nil {
				t.Fatal("Expected a world and a camera")
			}
			if len(s.World.Objects) == 0 || len(s.World.Lights) == 0 {
				t.Error("Expected scene to contain objects and lights")
			}
			if s.Camera.Width() != 64 || s.Camera.Height() != 48 {
				t.Errorf("Expected 64x48 camera, got %dx%d", s.Camera.Width(), s.Camera.Height())
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	if _, err := New("nope", 64, 48); err == nil {
		t.Fatal("Expected an error for an unknown scene name")
	}
}

func TestNewMeshScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	data := "v 0 1 0\nv -1 0 0\nv 1 0 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	s, err := NewMeshScene(path, 64, 48)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s.World.Objects) != 2 {
		t.Errorf("Expected floor plus mesh holder, got %d objects", len(s.World.Objects))
	}
}

func TestNewMeshScene_MissingFile(t *testing.T) {
	if _, err := NewMeshScene("missing.obj", 64, 48); err == nil {
		t.Fatal("Expected an error for a missing OBJ file")
	}
}
