package validation

import (
	"fmt"
	"net/http"
)

// formOverhead is slack for non-file form fields and multipart framing.
const formOverhead = 1 << 20

// ValidateAndParseMultipart caps the request body at the attachment limit plus
// form overhead and parses the multipart form. MaxBytesReader stops reading at
// the cap, so an oversized upload cannot exhaust the server even if the client
// ignores Content-Length.
func ValidateAndParseMultipart(w http.ResponseWriter, r *http.Request, maxAttachmentSize int64) error {
	maxSize := maxAttachmentSize + formOverhead
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrPayloadTooLarge)
	}
	return nil
}
