package api

import (
	"io"
	"net/http"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/service"
)

// maxLogoForm bounds the multipart form held in memory during a logo
// upload. The service enforces the per-file limit.
const maxLogoForm = 4 << 20

// ProfileHandler serves /api/profile and the business context endpoint.
type ProfileHandler struct {
	profiles service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var params service.UpdateProfileParams
	if err := decodeJSON(r, "ProfileHandler.Update", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	profile, err := h.profiles.UpdateProfile(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UploadLogo handles POST /api/profile/logo. The logo arrives as the
// multipart field "logo".
func (h *ProfileHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	op := "ProfileHandler.UploadLogo"

	if err := r.ParseMultipartForm(maxLogoForm); err != nil {
		handler.ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid(op, "Missing logo file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handler.InternalErrorResponse(w, r, err)
		return
	}

	url, err := h.profiles.UploadLogo(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"logo_url": url})
}

// Context handles GET /api/context. Clients load this once at startup to
// label amounts and documents.
func (h *ProfileHandler) Context(w http.ResponseWriter, r *http.Request) {
	bc, err := h.profiles.BusinessContext(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bc)
}
