package domain

import "mime/multipart"

// PendingUpload is a validated image that has not been written to media
// storage yet. Data is still the open multipart file; whoever consumes the
// upload closes it.
type PendingUpload struct {
	Extension   string // cleaned and capped, includes the leading dot (may be empty)
	MimeType    string
	SizeBytes   int64
	ImageWidth  *int
	ImageHeight *int
	Data        multipart.File
}
