package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spamlists/spamlists/src/internal/lists"
)

// GetUsers returns the users of the mail root. The user directories are
// re-read on every call.
// GET /api/v1/users
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.Refresh(); err != nil {
		WriteDomainError(w, err, nil)
		return
	}
	writeJSONData(w, UsersResponse{Users: h.mgr.Users()})
}

// GetUserList returns the entries of one list of one user. The MD5 of the
// file is sent as ETag; a matching If-None-Match yields 304.
// GET /api/v1/users/{user}/lists/{list}
func (h *Handler) GetUserList(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	name, err := lists.ParseListName(chi.URLParam(r, "list"))
	if err != nil {
		WriteDomainError(w, err, nil)
		return
	}

	if err := h.mgr.Refresh(); err != nil {
		WriteDomainError(w, err, nil)
		return
	}

	snapshot, err := h.mgr.Snapshot(user, name)
	if err != nil {
		WriteDomainError(w, err, nil)
		return
	}

	etag := `"` + snapshot.Checksum + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeJSONData(w, ListResponse{
		User:     user,
		List:     name,
		Entries:  snapshot.Entries,
		Checksum: snapshot.Checksum,
	})
}
