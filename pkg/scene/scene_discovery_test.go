package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListSceneFiles(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join("..", "..", "scenes"))
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}

	tests := []struct {
		name        string
		description string
	}{
		{"mirror", "Mirror wall facing an area light behind the camera"},
		{"spheres", "Three spheres on a floor inside a closed box"},
	}
	for i, tt := range tests {
		if scenes[i].Name != tt.name || scenes[i].Description != tt.description {
			t.Errorf("Scene %d: expected %q (%q), got %q (%q)", i, tt.name, tt.description, scenes[i].Name, scenes[i].Description)
		}
		if scenes[i].Path == "" {
			t.Errorf("Scene %d has no path", i)
		}
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %d", len(scenes))
	}
}

func TestReadSceneHeader_MultiLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hall.toml")
	data := "# Long hall\n#\n# with two lights\nname = \"hall\"\n# not part of the header\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := readSceneHeader(path)
	if err != nil {
		t.Fatalf("readSceneHeader failed: %v", err)
	}
	if info.Name != "hall" || info.Description != "Long hall with two lights" {
		t.Errorf("Unexpected header %+v", info)
	}
}
