package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	internal_errors "github.com/lacentralbaja/archivo/internal/errors"
	"github.com/lacentralbaja/archivo/internal/jwt"
	"github.com/lacentralbaja/archivo/internal/logger"
	"github.com/lacentralbaja/archivo/internal/markdown"
	"github.com/lacentralbaja/archivo/internal/middleware"
	"github.com/lacentralbaja/archivo/internal/service"
	"github.com/lacentralbaja/archivo/internal/validation"
)

// List limits mirror what the page actually renders: a shorter public board,
// a longer moderation queue, the full-ish artist wall.
const (
	defaultPublicBoardLimit = 60
	defaultAdminBoardLimit  = 120
	defaultArtistLimit      = 80
	maxListLimit            = 200
)

type Handler struct {
	board    service.BoardService
	artists  service.ArtistService
	seed     service.SeedService
	gate     *middleware.AdminGate
	sessions jwt.SessionService
	renderer *markdown.Renderer

	maxAttachmentBytes int64
	sessionTTL         time.Duration
}

func New(
	board service.BoardService,
	artists service.ArtistService,
	seed service.SeedService,
	gate *middleware.AdminGate,
	sessions jwt.SessionService,
	renderer *markdown.Renderer,
	maxAttachmentBytes int64,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		board:              board,
		artists:            artists,
		seed:               seed,
		gate:               gate,
		sessions:           sessions,
		renderer:           renderer,
		maxAttachmentBytes: maxAttachmentBytes,
		sessionTTL:         sessionTTL,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}

// parseLimit clamps a ?limit= value to [1, maxListLimit]. Garbage and zero
// fall back to the endpoint's default, negative values clamp up to 1.
func parseLimit(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return def
	}
	if n < 1 {
		return 1
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}

// formFile returns the first uploaded file for the field, nil when the form
// carries none.
func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// uploadError maps validation failures onto HTTP status codes.
func uploadError(err error) error {
	switch {
	case errors.Is(err, validation.ErrPayloadTooLarge):
		return &internal_errors.ErrorWithStatusCode{Message: "Upload too large", StatusCode: http.StatusRequestEntityTooLarge}
	case errors.Is(err, validation.ErrNotAnImage):
		return &internal_errors.ErrorWithStatusCode{Message: "Only image uploads are accepted", StatusCode: http.StatusBadRequest}
	}
	return err
}
