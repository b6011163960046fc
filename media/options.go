package media

const (
	// DefaultTransformation fits the image and lets the host pick the quality.
	DefaultTransformation = "c_fit,q_auto"
	// ThumbnailTransformation additionally bounds the image to 400x400.
	ThumbnailTransformation = "w_400,h_400,c_fit,q_auto"
)

// UploadOptions are the per-call settings an Uploader honours.
type UploadOptions struct {
	Transformation string
}

type UploadOption func(*UploadOptions)

// WithTransformation replaces the transformation sent with the upload.
func WithTransformation(t string) UploadOption {
	return func(o *UploadOptions) {
		o.Transformation = t
	}
}

// Options resolves opts over the defaults.
func Options(opts ...UploadOption) UploadOptions {
	o := UploadOptions{Transformation: DefaultTransformation}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
