package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	internal_errors "github.com/lacentralbaja/archivo/internal/errors"
)

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status-carrying error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, &internal_errors.ErrorWithStatusCode{Message: "Title is required", StatusCode: http.StatusBadRequest})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Title is required\n", rr.Body.String())
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDecodeValidate(t *testing.T) {
	type login struct {
		Key string `json:"key" validate:"required"`
	}

	t.Run("valid", func(t *testing.T) {
		var body login
		err := DecodeValidate(strings.NewReader(`{"key":"s3cret"}`), &body)
		assert.NoError(t, err)
		assert.Equal(t, "s3cret", body.Key)
	})

	t.Run("missing required field", func(t *testing.T) {
		var body login
		err := DecodeValidate(strings.NewReader(`{}`), &body)
		var e *internal_errors.ErrorWithStatusCode
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	})

	t.Run("garbage json", func(t *testing.T) {
		var body login
		err := DecodeValidate(strings.NewReader(`{`), &body)
		assert.Error(t, err)
	})
}
