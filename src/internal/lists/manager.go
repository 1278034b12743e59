package lists

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/log"
	"github.com/spamlists/spamlists/src/internal/utils"
)

// Manager applies list changes to the users found under the mail root.
// Operations are serialized; a single run is strictly sequential.
type Manager struct {
	cfg   *config.Config
	root  string
	out   io.Writer
	mu    sync.Mutex
	users []string
}

// NewManager creates a manager for cfg and enumerates the users. Summaries
// are printed to out (os.Stdout when nil) and recorded in the log file.
func NewManager(cfg *config.Config, out io.Writer) (*Manager, error) {
	if out == nil {
		out = os.Stdout
	}
	m := &Manager{
		cfg:  cfg,
		root: cfg.GetAbsSourcePath(),
		out:  out,
	}
	if err := m.Refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Refresh re-reads the user directories from the mail root.
func (m *Manager) Refresh() error {
	users, err := listUsers(m.root)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.users = users
	m.mu.Unlock()

	log.Debugf("Found %d user(s) in %s", len(users), m.root)
	return nil
}

// Users returns every user under the mail root, sorted.
func (m *Manager) Users() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.users...)
}

// ListPath returns the path of the named list file of user.
func (m *Manager) ListPath(user string, name ListName) string {
	rel, ok := m.cfg.RelativePath(string(name))
	if !ok {
		rel = string(name)
	}
	return utils.UserFilePath(m.root, user, rel)
}

// Entries returns the current content of one list file of user.
func (m *Manager) Entries(user string, name ListName) ([]string, error) {
	snapshot, err := m.Snapshot(user, name)
	if err != nil {
		return nil, err
	}
	return snapshot.Entries, nil
}

// Snapshot returns the current content of one list file of user along with
// its checksum.
func (m *Manager) Snapshot(user string, name ListName) (*Snapshot, error) {
	if _, err := FilterUsers(m.Users(), Filter{FilterAllow: {user}}); err != nil {
		return nil, err
	}
	return readSnapshot(m.ListPath(user, name))
}

// Add appends the given entries to the lists of every selected user,
// skipping entries already present. The first failure aborts the run; users
// processed before it keep their changes.
func (m *Manager) Add(lists Lists, filter Filter) ([]*Report, error) {
	return m.apply(OperationAdd, lists, filter, addToList)
}

// Remove drops the given entries from the lists of every selected user.
// Failure semantics are the same as for Add.
func (m *Manager) Remove(lists Lists, filter Filter) ([]*Report, error) {
	return m.apply(OperationRemove, lists, filter, removeFromList)
}

type listOp func(path string, entries []string, report *ListReport) error

func (m *Manager) apply(op Operation, lists Lists, filter Filter, fn listOp) ([]*Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := lists.validate(); err != nil {
		return nil, err
	}

	users, err := FilterUsers(m.users, filter)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(users))
	for _, user := range users {
		report := newReport(op, user)
		for _, name := range ListNames {
			entries, ok := lists[name]
			if !ok {
				continue
			}
			path := m.ListPath(user, name)
			log.Debugf("%s %d entries: user %s, list %s (%s)", op, len(entries), user, name, path)
			if err := fn(path, entries, report.Lists[name]); err != nil {
				return reports, fmt.Errorf("user %s, list %s: %w", user, name, err)
			}
		}
		m.emit(report)
		reports = append(reports, report)
	}

	return reports, nil
}

func (m *Manager) emit(report *Report) {
	summary := report.Summary()
	_, _ = fmt.Fprint(m.out, summary)
	log.Record(log.LevelInfo, "%s", summary)
}

func listUsers(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, notFoundOr(root, err)
	}

	users := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			users = append(users, entry.Name())
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(root, entry.Name())); err == nil && info.IsDir() {
				users = append(users, entry.Name())
			}
		}
	}
	sort.Strings(users)
	return users, nil
}
