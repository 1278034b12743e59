package api

import "github.com/spamlists/spamlists/src/internal/lists"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// UsersResponse returns the users of the mail root.
type UsersResponse struct {
	Users []string `json:"users"`
}

// ListResponse returns the content of one list file.
type ListResponse struct {
	User     string         `json:"user"`
	List     lists.ListName `json:"list"`
	Entries  []string       `json:"entries"`
	Checksum string         `json:"checksum"`
}

// DomainsRequest describes an add or remove operation. A list is processed
// when its key is present. allow and deny restrict the affected users the
// same way the apply command flags do; an empty allow list selects nobody.
type DomainsRequest struct {
	Whitelist *[]string `json:"whitelist,omitempty"`
	Blacklist *[]string `json:"blacklist,omitempty"`
	Allow     *[]string `json:"allow,omitempty"`
	Deny      *[]string `json:"deny,omitempty"`
}

// DomainsResponse returns one report per processed user.
type DomainsResponse struct {
	Reports  []*lists.Report             `json:"reports"`
	Warnings map[lists.ListName][]string `json:"warnings,omitempty"`
}

// HealthCheckResponse returns health check results.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}
