package media

import "errors"

// UploadError is returned by an Uploader. Timeout separates an elapsed
// deadline from every other upstream failure.
type UploadError struct {
	Timeout bool
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Timeout {
		return "image upload timed out"
	}
	return "image upload failed: " + e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is an upload timeout.
func IsTimeout(err error) bool {
	var ue *UploadError
	return errors.As(err, &ue) && ue.Timeout
}
