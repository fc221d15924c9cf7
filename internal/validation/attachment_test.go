package validation

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="image"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	t.Run("nil header means no upload", func(t *testing.T) {
		up, err := ValidateImage(nil)
		assert.NoError(t, err)
		assert.Nil(t, up)
	})

	t.Run("accepts png and extracts dimensions", func(t *testing.T) {
		fh := fileHeader(t, "idea.png", "image/png", pngBytes(t, 2, 3))
		up, err := ValidateImage(fh)
		require.NoError(t, err)
		assert.Equal(t, ".png", up.Extension)
		assert.Equal(t, "image/png", up.MimeType)
		require.NotNil(t, up.ImageWidth)
		require.NotNil(t, up.ImageHeight)
		assert.Equal(t, 2, *up.ImageWidth)
		assert.Equal(t, 3, *up.ImageHeight)
		up.Data.Close()
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		fh := fileHeader(t, "notes.txt", "text/plain", []byte("hola"))
		_, err := ValidateImage(fh)
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("detects mime from extension when generic", func(t *testing.T) {
		fh := fileHeader(t, "idea.png", "application/octet-stream", pngBytes(t, 1, 1))
		up, err := ValidateImage(fh)
		require.NoError(t, err)
		assert.Equal(t, "image/png", up.MimeType)
		up.Data.Close()
	})
}

func TestCapExtension(t *testing.T) {
	assert.Equal(t, ".png", CapExtension("foo.png"))
	assert.Equal(t, "", CapExtension("noext"))
	got := CapExtension("x.reallylongextension")
	assert.Len(t, got, 10)
	assert.Equal(t, ".reallylon", got)
}
