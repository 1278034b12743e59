package api

import (
	"net/http"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
	"github.com/spamlists/spamlists/src/internal/lists"
	"github.com/spamlists/spamlists/src/internal/log"
)

// AddDomains appends domains to the lists of the selected users.
// POST /api/v1/domains/add
func (h *Handler) AddDomains(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.mgr.Add)
}

// RemoveDomains drops domains from the lists of the selected users.
// POST /api/v1/domains/remove
func (h *Handler) RemoveDomains(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.mgr.Remove)
}

type mutation func(lists.Lists, lists.Filter) ([]*lists.Report, error)

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op mutation) {
	var req DomainsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	target, filter, err := req.toOperation()
	if err != nil {
		WriteDomainError(w, err, nil)
		return
	}

	warnings := lists.SuspiciousEntries(target)
	for name, entries := range warnings {
		log.Warnf("%d %s entries do not look like domains: %v", len(entries), name, entries)
	}

	// Users may have been added or removed since the last request.
	if err := h.mgr.Refresh(); err != nil {
		WriteDomainError(w, err, nil)
		return
	}

	reports, err := op(target, filter)
	if err != nil {
		log.Errorf("%v", err)
		WriteDomainError(w, err, map[string]interface{}{"completed": reports})
		return
	}

	writeJSONData(w, DomainsResponse{Reports: reports, Warnings: warnings})
}

func (req DomainsRequest) toOperation() (lists.Lists, lists.Filter, error) {
	if req.Whitelist == nil && req.Blacklist == nil {
		return nil, nil, apperrors.NewMissingFlagError("at least one of whitelist or blacklist is required")
	}
	if req.Allow != nil && req.Deny != nil {
		return nil, nil, apperrors.NewConflictingFlagsError("allow and deny can not be used together")
	}

	target := make(lists.Lists, 2)
	if req.Whitelist != nil {
		target[lists.Whitelist] = *req.Whitelist
	}
	if req.Blacklist != nil {
		target[lists.Blacklist] = *req.Blacklist
	}

	var filter lists.Filter
	switch {
	case req.Allow != nil:
		filter = lists.Filter{lists.FilterAllow: *req.Allow}
	case req.Deny != nil:
		filter = lists.Filter{lists.FilterDeny: *req.Deny}
	}

	return target, filter, nil
}
