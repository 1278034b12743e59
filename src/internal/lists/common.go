package lists

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
	"github.com/spamlists/spamlists/src/internal/utils"
)

// ListName names one of the per-user list files.
type ListName string

const (
	Whitelist ListName = "whitelist"
	Blacklist ListName = "blacklist"
)

// ListNames holds every list name in reporting order.
var ListNames = []ListName{Whitelist, Blacklist}

// Lists maps a list name to the entries to add to or remove from it. Either
// or both keys may be present.
type Lists map[ListName][]string

// FilterKind is a key of Filter.
type FilterKind string

const (
	FilterAllow FilterKind = "allow"
	FilterDeny  FilterKind = "deny"
)

// Filter restricts an operation to a subset of users. With FilterAllow only
// the listed users are affected, with FilterDeny everyone except them. The
// presence of a key matters, not its length: an empty allow list selects
// nobody.
type Filter map[FilterKind][]string

// ParseListName converts a string to a known ListName.
func ParseListName(name string) (ListName, error) {
	for _, ln := range ListNames {
		if string(ln) == name {
			return ln, nil
		}
	}
	return "", apperrors.NewValidationError(fmt.Sprintf("unknown list %q (expected whitelist or blacklist)", name), nil)
}

func (l Lists) validate() error {
	for name := range l {
		if _, err := ParseListName(string(name)); err != nil {
			return err
		}
	}
	return nil
}

// SuspiciousEntries returns, per list, the entries whose host part is not a
// valid domain name. Entries are never rejected for their shape; callers use
// this to warn.
func SuspiciousEntries(l Lists) map[ListName][]string {
	result := make(map[ListName][]string)
	for _, name := range ListNames {
		for _, entry := range l[name] {
			if !utils.IsDomainPattern(entry) {
				result[name] = append(result[name], entry)
			}
		}
	}
	return result
}

// scanLines calls fn with every non-blank line of r, trimmed.
func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func openExisting(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, notFoundOr(path, err)
	}
	return f, nil
}

func notFoundOr(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return apperrors.NewFileNotFoundError(fmt.Sprintf("file does not exist: %s", path), err)
	}
	return fmt.Errorf("failed to access %s: %w", path, err)
}

// uniqueOrdered drops repeated values, keeping the first occurrence.
func uniqueOrdered(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func sortedUnique(values []string) []string {
	result := uniqueOrdered(values)
	sort.Strings(result)
	return result
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
