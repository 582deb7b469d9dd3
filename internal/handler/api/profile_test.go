package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/service"
)

func TestProfileHandlerUploadLogo(t *testing.T) {
	var gotFilename, gotType string
	var gotData []byte
	h := NewProfileHandler(&fakeProfiles{
		uploadFn: func(_ context.Context, filename, contentType string, data []byte) (string, error) {
			gotFilename, gotType, gotData = filename, contentType, data
			return "/uploads/logos/abc.png", nil
		},
	})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="logo"; filename="logo.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/logo", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadLogo(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/uploads/logos/abc.png", resp["logo_url"])

	assert.Equal(t, "logo.png", gotFilename)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, []byte("png-bytes"), gotData)
}

func TestProfileHandlerUploadLogoMissingFile(t *testing.T) {
	h := NewProfileHandler(&fakeProfiles{})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("note", "no file here"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/logo", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	h.UploadLogo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing logo file")
}

func TestProfileHandlerContext(t *testing.T) {
	h := NewProfileHandler(&fakeProfiles{
		contextFn: func(context.Context) (*domain.BusinessContext, error) {
			return &domain.BusinessContext{
				BusinessName:   "Acme Plumbing",
				Currency:       "USD",
				CurrencySymbol: "$",
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Context(rec, httptest.NewRequest(http.MethodGet, "/api/context", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var bc domain.BusinessContext
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bc))
	assert.Equal(t, "$", bc.CurrencySymbol)
}

func TestProfileHandlerUpdate(t *testing.T) {
	var got service.UpdateProfileParams
	h := NewProfileHandler(&fakeProfiles{
		updateFn: func(_ context.Context, params service.UpdateProfileParams) (*service.Profile, error) {
			got = params
			return &service.Profile{BusinessName: params.BusinessName}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/profile",
		bytes.NewReader([]byte(`{"business_name": "Acme Plumbing", "website": "https://acme.example"}`)))
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme Plumbing", got.BusinessName)
	assert.Equal(t, "https://acme.example", got.Website)
}
