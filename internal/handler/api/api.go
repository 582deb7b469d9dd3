// Package api contains the JSON handlers behind /api. Handlers decode the
// request, call a service, and render either the resource or the shared
// error envelope from the handler package.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/crmrapid/portal/internal/domain"
)

// writeJSON renders v with the given status. Encode errors are ignored:
// the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, mapping malformed input to
// an EINVALID domain error.
func decodeJSON(r *http.Request, op string, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.WrapError(err, domain.EINVALID, op, "Invalid JSON body")
	}
	return nil
}
