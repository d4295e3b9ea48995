package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/delivery/view"
	"doc-booker/internal/domain/entity"
	"doc-booker/internal/usecase"
	"doc-booker/pkg/response"
	"doc-booker/pkg/sanitize"
	"doc-booker/pkg/validator"
)

// NonceService issues and verifies the anti-forgery tokens guarding
// the public filter endpoint.
type NonceService interface {
	Issue(ctx context.Context) (string, error)
	Verify(ctx context.Context, token string) (bool, error)
}

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	renderer         *view.DirectoryRenderer
	nonceService     NonceService
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(
	directoryUsecase usecase.DirectoryUsecase,
	renderer *view.DirectoryRenderer,
	nonceService NonceService,
	validator *validator.CustomValidator,
) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		renderer:         renderer,
		nonceService:     nonceService,
		validator:        validator,
	}
}

// GetDirectory composes the initial directory view: the unfiltered
// result set plus the data the filter form needs, including a fresh
// anti-forgery token for subsequent refinements.
func (h *DirectoryHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	filter := entity.DefaultDirectoryFilter()

	result, err := h.directoryUsecase.BuildDirectory(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to build directory")
		return
	}

	html, err := h.renderer.Render(result.Groups)
	if err != nil {
		response.InternalServerError(w, "Failed to render directory")
		return
	}

	departments, keys, err := h.directoryUsecase.DepartmentOptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load departments")
		return
	}

	options := make([]dto.DepartmentOptionResponse, len(departments))
	for i, department := range departments {
		options[i] = dto.DepartmentOptionResponse{
			Key:  keys[i],
			Name: department.Name,
		}
	}

	token, err := h.nonceService.Issue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to issue nonce")
		return
	}

	response.Success(w, http.StatusOK, "Directory retrieved successfully", dto.DirectoryPageResponse{
		HTML:  html,
		Total: result.Total,
		Filters: dto.DirectoryFilterPayload{
			Letter: entity.DirectoryLetterAll,
		},
		Departments: options,
		Letters:     directoryLetters(),
		Nonce:       token,
	})
}

// FilterDirectory handles asynchronous filter refinement.
func (h *DirectoryHandler) FilterDirectory(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterDirectoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ok, err := h.nonceService.Verify(r.Context(), req.Nonce)
	if err != nil {
		response.InternalServerError(w, "Failed to verify request")
		return
	}
	if !ok {
		response.Error(w, http.StatusForbidden, "Invalid request. Please refresh the page.", nil)
		return
	}

	filter := entity.DirectoryFilter{
		Department:   sanitize.TextField(req.Filters.Department),
		Name:         sanitize.TextField(req.Filters.Name),
		Letter:       normalizeLetter(req.Filters.Letter),
		Date:         sanitize.TextField(req.Filters.Date),
		Availability: sanitize.TextField(req.Filters.Availability),
	}

	result, err := h.directoryUsecase.BuildDirectory(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to build directory")
		return
	}

	html, err := h.renderer.Render(result.Groups)
	if err != nil {
		response.InternalServerError(w, "Failed to render directory")
		return
	}

	response.Success(w, http.StatusOK, "Directory filtered successfully", dto.DirectoryDataResponse{
		HTML:  html,
		Total: result.Total,
	})
}

// normalizeLetter lowercases the letter filter and falls back to the
// default when it is neither "all" nor a single A-Z letter.
func normalizeLetter(raw string) string {
	letter := sanitize.TextField(raw)
	letter = toLowerASCII(letter)
	if letter == entity.DirectoryLetterAll {
		return letter
	}
	if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
		return letter
	}
	return entity.DirectoryLetterAll
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func directoryLetters() []string {
	letters := make([]string, 0, 26)
	for c := byte('A'); c <= 'Z'; c++ {
		letters = append(letters, string(c))
	}
	return letters
}
