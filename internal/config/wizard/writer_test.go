package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llamaup/llamaup/internal/config"
)

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llamaup.yaml")

	cfg := &config.Config{
		Name:       "my-llama",
		Location:   "fsn1",
		ServerType: "gex44",
		Model:      "llama3.1:8b",
	}

	if err := WriteConfig(cfg, path); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# llamaup instance configuration") {
		t.Error("expected header comment")
	}
	if !strings.Contains(content, "name: my-llama") {
		t.Error("expected name in YAML body")
	}
	if !strings.Contains(content, "HCLOUD_TOKEN") {
		t.Error("expected token hint in header")
	}
	if strings.Contains(content, "image:") {
		t.Error("defaulted fields must not be written")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}

	// Round-trip through the loader.
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "my-llama" {
		t.Errorf("loaded.Name = %q, want %q", loaded.Name, "my-llama")
	}
	if loaded.Image != config.DefaultImage {
		t.Errorf("loaded.Image = %q, want default %q", loaded.Image, config.DefaultImage)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llamaup.yaml")

	if FileExists(path) {
		t.Error("expected false for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("expected true for existing file")
	}
}

func TestConfirmOverwrite_Injected(t *testing.T) {
	orig := confirmOverwrite
	defer func() { confirmOverwrite = orig }()

	confirmOverwrite = func(path string) (bool, error) { return true, nil }
	ok, err := ConfirmOverwrite("whatever")
	if err != nil || !ok {
		t.Errorf("ConfirmOverwrite = (%v, %v), want (true, nil)", ok, err)
	}
}
