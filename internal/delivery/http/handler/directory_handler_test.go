package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"doc-booker/internal/delivery/view"
	"doc-booker/internal/domain/entity"
	"doc-booker/internal/usecase"
	"doc-booker/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectoryUsecase struct {
	lastFilter entity.DirectoryFilter
	result     entity.DirectoryResult
}

func (s *stubDirectoryUsecase) BuildDirectory(ctx context.Context, filter entity.DirectoryFilter) (*entity.DirectoryResult, error) {
	s.lastFilter = filter
	return &s.result, nil
}

func (s *stubDirectoryUsecase) DepartmentOptions(ctx context.Context) ([]entity.Department, []string, error) {
	return []entity.Department{{Name: "Cardiology"}}, []string{"Cardiology"}, nil
}

var _ usecase.DirectoryUsecase = (*stubDirectoryUsecase)(nil)

type stubNonceService struct {
	issued string
	valid  bool
}

func (s *stubNonceService) Issue(ctx context.Context) (string, error) {
	return s.issued, nil
}

func (s *stubNonceService) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.valid, nil
}

func newDirectoryHandler(directoryUsecase usecase.DirectoryUsecase, nonceService NonceService) *DirectoryHandler {
	return NewDirectoryHandler(directoryUsecase, view.NewDirectoryRenderer(), nonceService, validator.NewValidator())
}

func TestGetDirectory(t *testing.T) {
	directoryUsecase := &stubDirectoryUsecase{result: entity.DirectoryResult{Total: 0}}
	h := newDirectoryHandler(directoryUsecase, &stubNonceService{issued: "nonce-123", valid: true})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory", nil)
	rec := httptest.NewRecorder()
	h.GetDirectory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			HTML        string `json:"html"`
			Total       int    `json:"total"`
			Departments []struct {
				Key  string `json:"key"`
				Name string `json:"name"`
			} `json:"departments"`
			Letters []string `json:"letters"`
			Nonce   string   `json:"nonce"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Contains(t, body.Data.HTML, "doc-booker-directory__empty")
	assert.Equal(t, "nonce-123", body.Data.Nonce)
	assert.Len(t, body.Data.Letters, 26)
	require.Len(t, body.Data.Departments, 1)
	assert.Equal(t, "Cardiology", body.Data.Departments[0].Name)

	// The initial render uses the unfiltered default.
	assert.Equal(t, entity.DefaultDirectoryFilter(), directoryUsecase.lastFilter)
}

func TestFilterDirectoryRejectsInvalidNonce(t *testing.T) {
	h := newDirectoryHandler(&stubDirectoryUsecase{}, &stubNonceService{valid: false})

	payload := []byte(`{"filters":{"letter":"c"},"nonce":"stale"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/directory/filter", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.FilterDirectory(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid request. Please refresh the page.", body.Message)
}

func TestFilterDirectoryRejectsMissingNonce(t *testing.T) {
	h := newDirectoryHandler(&stubDirectoryUsecase{}, &stubNonceService{valid: true})

	payload := []byte(`{"filters":{"letter":"c"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/directory/filter", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.FilterDirectory(rec, req)

	// A missing token gets the same response as a stale one.
	require.Equal(t, http.StatusForbidden, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request. Please refresh the page.", body.Message)
}

func TestFilterDirectorySanitizesFilters(t *testing.T) {
	directoryUsecase := &stubDirectoryUsecase{}
	h := newDirectoryHandler(directoryUsecase, &stubNonceService{valid: true})

	payload := []byte(`{"filters":{"department":"  Cardiology ","name":" ann\tlee ","letter":"ZZ"},"nonce":"ok"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/directory/filter", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.FilterDirectory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cardiology", directoryUsecase.lastFilter.Department)
	assert.Equal(t, "ann lee", directoryUsecase.lastFilter.Name)
	assert.Equal(t, entity.DirectoryLetterAll, directoryUsecase.lastFilter.Letter)
}

func TestNormalizeLetter(t *testing.T) {
	cases := map[string]string{
		"all":  "all",
		"ALL":  "all",
		"c":    "c",
		"C":    "c",
		" b ":  "b",
		"":     "all",
		"ab":   "all",
		"1":    "all",
		"#":    "all",
		"é":    "all",
		"none": "all",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, normalizeLetter(input), "input=%q", input)
	}
}
