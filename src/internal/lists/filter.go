package lists

import (
	"fmt"
	"strings"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
)

// FilterUsers returns the users an operation applies to.
//
// Without a filter every user is selected. An allow filter selects exactly
// the listed users and a deny filter selects everyone else; in both cases
// every listed user must exist, otherwise a USER_NOT_FOUND error is returned.
// Allow and deny together are rejected. The result is sorted.
func FilterUsers(all []string, filter Filter) ([]string, error) {
	for kind := range filter {
		if kind != FilterAllow && kind != FilterDeny {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown filter %q (expected allow or deny)", kind), nil)
		}
	}

	allowed, hasAllow := filter[FilterAllow]
	denied, hasDeny := filter[FilterDeny]

	if hasAllow && hasDeny {
		return nil, apperrors.NewConflictingFlagsError("allow and deny filters can not be used together")
	}

	known := toSet(all)

	switch {
	case hasAllow:
		if err := checkUsersExist(known, allowed); err != nil {
			return nil, err
		}
		return sortedUnique(allowed), nil
	case hasDeny:
		if err := checkUsersExist(known, denied); err != nil {
			return nil, err
		}
		excluded := toSet(denied)
		result := make([]string, 0, len(all))
		for _, user := range all {
			if _, ok := excluded[user]; !ok {
				result = append(result, user)
			}
		}
		return sortedUnique(result), nil
	default:
		return sortedUnique(all), nil
	}
}

func checkUsersExist(known map[string]struct{}, users []string) error {
	var missing []string
	for _, user := range uniqueOrdered(users) {
		if _, ok := known[user]; !ok {
			missing = append(missing, user)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewUserNotFoundError(fmt.Sprintf("user(s) do not exist: %s", strings.Join(missing, ", ")))
	}
	return nil
}
