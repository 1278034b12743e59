package lists

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spamlists/spamlists/src/internal/config"
)

// mailRoot creates a mail root with one directory per user. files maps
// "user/list" to the initial content of that list; users without entries get
// empty whitelist and blacklist files.
func mailRoot(t *testing.T, users []string, files map[string]string) (*Manager, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()

	for _, user := range users {
		dir := filepath.Join(root, user, ".spamassassin")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		for _, name := range ListNames {
			content := files[user+"/"+string(name)]
			if err := os.WriteFile(filepath.Join(dir, string(name)), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	cfg := config.Default()
	cfg.SourcePath = root

	out := &bytes.Buffer{}
	mgr, err := NewManager(cfg, out)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return mgr, out
}

func readList(t *testing.T, mgr *Manager, user string, name ListName) string {
	t.Helper()
	data, err := os.ReadFile(mgr.ListPath(user, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
