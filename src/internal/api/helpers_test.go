package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/lists"
	"github.com/spamlists/spamlists/src/internal/log"
)

func init() {
	log.DisableLogs()
}

// newTestRouter creates a mail root holding the given list files (keyed by
// "user/list") and a router serving it.
func newTestRouter(t *testing.T, users []string, files map[string]string) (http.Handler, *config.Config) {
	t.Helper()
	root := t.TempDir()

	for _, user := range users {
		dir := filepath.Join(root, user, ".spamassassin")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		for _, name := range lists.ListNames {
			content := files[user+"/"+string(name)]
			if err := os.WriteFile(filepath.Join(dir, string(name)), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	cfg := config.Default()
	cfg.SourcePath = root

	mgr, err := lists.NewManager(cfg, io.Discard)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return NewRouter(cfg, mgr, nil), cfg
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	if err := json.Unmarshal(envelope.Data, v); err != nil {
		t.Fatalf("failed to decode data %q: %v", envelope.Data, err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

func readFile(t *testing.T, cfg *config.Config, user, list string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.SourcePath, user, ".spamassassin", list))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func strs(values ...string) *[]string {
	return &values
}
