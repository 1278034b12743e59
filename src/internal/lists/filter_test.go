package lists

import (
	"errors"
	"testing"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
)

func TestFilterUsers(t *testing.T) {
	all := []string{"carol", "alice", "bob"}

	tests := []struct {
		name    string
		filter  Filter
		want    []string
		wantErr error
	}{
		{"no filter", nil, []string{"alice", "bob", "carol"}, nil},
		{"empty filter", Filter{}, []string{"alice", "bob", "carol"}, nil},
		{"allow subset", Filter{FilterAllow: {"bob", "alice"}}, []string{"alice", "bob"}, nil},
		{"allow with duplicates", Filter{FilterAllow: {"bob", "bob"}}, []string{"bob"}, nil},
		{"allow empty selects nobody", Filter{FilterAllow: {}}, []string{}, nil},
		{"allow unknown user", Filter{FilterAllow: {"alice", "mallory"}}, nil, apperrors.ErrUserNotFound},
		{"deny subset", Filter{FilterDeny: {"bob"}}, []string{"alice", "carol"}, nil},
		{"deny everyone", Filter{FilterDeny: {"alice", "bob", "carol"}}, []string{}, nil},
		{"deny empty", Filter{FilterDeny: {}}, []string{"alice", "bob", "carol"}, nil},
		{"deny unknown user", Filter{FilterDeny: {"mallory"}}, nil, apperrors.ErrUserNotFound},
		{"allow and deny", Filter{FilterAllow: {"alice"}, FilterDeny: {"bob"}}, nil, apperrors.ErrConflictingFlags},
		{"unknown key", Filter{"maybe": {"alice"}}, nil, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterUsers(all, tt.filter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FilterUsers() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FilterUsers() error = %v", err)
			}
			if !equalStrings(got, tt.want) {
				t.Errorf("FilterUsers() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterUsers_DoesNotModifyInput(t *testing.T) {
	all := []string{"carol", "alice"}
	if _, err := FilterUsers(all, nil); err != nil {
		t.Fatal(err)
	}
	if all[0] != "carol" {
		t.Errorf("input slice was reordered: %q", all)
	}
}
