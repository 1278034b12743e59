package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spamlists/spamlists/src/internal/log"
)

func init() {
	log.DisableLogs()
}

type fixture struct {
	dir        string
	root       string
	configPath string
	logPath    string
}

// newFixture creates a mail root with the given users and a key=value
// configuration pointing at it.
func newFixture(t *testing.T, users ...string) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:        dir,
		root:       filepath.Join(dir, "mail"),
		configPath: filepath.Join(dir, "parameters.config"),
		logPath:    filepath.Join(dir, "log", "history.log"),
	}

	for _, user := range users {
		listDir := filepath.Join(f.root, user, ".spamassassin")
		if err := os.MkdirAll(listDir, 0755); err != nil {
			t.Fatal(err)
		}
		f.writeList(t, user, "whitelist", "")
		f.writeList(t, user, "blacklist", "")
	}
	if len(users) == 0 {
		if err := os.MkdirAll(f.root, 0755); err != nil {
			t.Fatal(err)
		}
	}

	config := fmt.Sprintf("source_path=%s\nlog_path=log/history.log\n", f.root)
	f.write(t, "parameters.config", config)
	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func (f *fixture) writeList(t *testing.T, user, list, content string) {
	t.Helper()
	path := filepath.Join(f.root, user, ".spamassassin", list)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) readList(t *testing.T, user, list string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, user, ".spamassassin", list))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// context returns an AppContext for the fixture that is closed with the test.
func (f *fixture) context(t *testing.T) (*AppContext, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	ctx := &AppContext{ConfigPath: f.configPath, Out: out}
	t.Cleanup(ctx.Close)
	return ctx, out
}
