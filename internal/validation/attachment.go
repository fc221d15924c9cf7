package validation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/lacentralbaja/archivo/internal/domain"
)

// maxExtensionLen caps the extension carried into the stored filename.
const maxExtensionLen = 10

// ValidateImage checks that the single uploaded file is an image and extracts
// its metadata. A nil header means no upload; callers treat that as "no image".
func ValidateImage(fileHeader *multipart.FileHeader) (*domain.PendingUpload, error) {
	if fileHeader == nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		file.Close()
		return nil, err
	}
	if !strings.HasPrefix(mimeType, "image/") {
		file.Close()
		return nil, fmt.Errorf("%w: got %s (file: %s)", ErrNotAnImage, mimeType, fileHeader.Filename)
	}

	width, height := ExtractImageDimensions(file)

	return &domain.PendingUpload{
		Extension:   CapExtension(fileHeader.Filename),
		MimeType:    mimeType,
		SizeBytes:   fileHeader.Size,
		ImageWidth:  width,
		ImageHeight: height,
		Data:        file,
	}, nil
}

// CapExtension derives a safe extension from the original filename, truncated
// to maxExtensionLen characters.
func CapExtension(filename string) string {
	ext := filepath.Clean(filepath.Ext(filename))
	if ext == "." || ext == "" {
		return ""
	}
	if len(ext) > maxExtensionLen {
		ext = ext[:maxExtensionLen]
	}
	return ext
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}

func ExtractImageDimensions(file multipart.File) (*int, *int) {
	img, _, err := image.DecodeConfig(file)
	file.Seek(0, 0)
	if err != nil {
		return nil, nil
	}

	width, height := img.Width, img.Height
	return &width, &height
}
