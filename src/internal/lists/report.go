package lists

import (
	"fmt"
	"strings"
)

// Operation is the kind of change a Report describes.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationRemove Operation = "remove"
)

// ListReport holds what happened to one list file of one user.
type ListReport struct {
	Inserted []string `json:"inserted,omitempty"`
	Repeated []string `json:"repeated,omitempty"`
	Dropped  []string `json:"dropped,omitempty"`
}

// Report is the per-user summary of an add or remove run.
type Report struct {
	Operation Operation                `json:"operation"`
	User      string                   `json:"user"`
	Lists     map[ListName]*ListReport `json:"lists"`
}

func newReport(op Operation, user string) *Report {
	r := &Report{
		Operation: op,
		User:      user,
		Lists:     make(map[ListName]*ListReport, len(ListNames)),
	}
	for _, name := range ListNames {
		r.Lists[name] = &ListReport{}
	}
	return r
}

// Summary renders the report the way it is printed and logged. Both lists
// are always listed, untouched ones with empty sets.
func (r *Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User: %s\n", r.User)
	for _, name := range ListNames {
		lr := r.Lists[name]
		if lr == nil {
			lr = &ListReport{}
		}
		fmt.Fprintf(&sb, "\tList: %s\n", name)
		switch r.Operation {
		case OperationAdd:
			fmt.Fprintf(&sb, "\t\tInserted: %s\n", formatSet(lr.Inserted))
			fmt.Fprintf(&sb, "\t\tRepeated: %s\n", formatSet(lr.Repeated))
		case OperationRemove:
			fmt.Fprintf(&sb, "\t\tDropped: %s\n", formatSet(lr.Dropped))
		}
	}
	return sb.String()
}

func formatSet(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}
