package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shopadmin/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// statusHostTimeout is the status the image host answers when it gave up
// waiting on the request.
const statusHostTimeout = 499

var errHostTimeout = errors.New("image host timed out")

// Uploader sends a base64 image to the image host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, encoded string, opts ...UploadOption) (string, error)
}

// hostStatus turns a host timeout answer into errHostTimeout. The SDK only
// decodes the body, so the status would otherwise be lost.
type hostStatus struct {
	next http.RoundTripper
}

func (t hostStatus) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == statusHostTimeout {
		resp.Body.Close()
		return nil, errHostTimeout
	}
	return resp, nil
}

type Cloudinary struct {
	cld     *cloudinary.Cloudinary
	folder  string
	timeout time.Duration
	log     zerolog.Logger
}

// NewCloudinary builds the gateway from credentials loaded at startup.
// CLOUDINARY_URL wins over the separate params.
func NewCloudinary(cfg config.Cloudinary, log zerolog.Logger) (*Cloudinary, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.URL != "":
		cld, err = cloudinary.NewFromURL(cfg.URL)
	case cfg.CloudName != "" && cfg.APIKey != "" && cfg.APISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	next := cld.Upload.Client.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	cld.Upload.Client.Transport = hostStatus{next: next}

	timeout := cfg.UploadTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Cloudinary{
		cld:     cld,
		folder:  cfg.Folder,
		timeout: timeout,
		log:     log.With().Str("component", "cloudinary").Logger(),
	}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, encoded string, opts ...UploadOption) (string, error) {
	if strings.TrimSpace(encoded) == "" {
		return "", &UploadError{Message: "empty image payload"}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	o := Options(opts...)
	start := time.Now()
	resp, err := c.cld.Upload.Upload(ctx, DataURI(encoded), uploader.UploadParams{
		PublicID:       uuid.NewString(),
		Folder:         c.folder,
		ResourceType:   "image",
		Transformation: o.Transformation,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, errHostTimeout) {
			c.log.Warn().Dur("elapsed", time.Since(start)).Msg("upload timed out")
			return "", &UploadError{Timeout: true, Message: "upload timed out", Err: err}
		}
		c.log.Error().Err(err).Msg("upload failed")
		return "", &UploadError{Message: err.Error(), Err: err}
	}
	if resp == nil {
		return "", &UploadError{Message: "cloudinary response is nil"}
	}
	if resp.Error.Message != "" {
		c.log.Error().Str("upstream", resp.Error.Message).Msg("upload rejected")
		return "", &UploadError{Message: resp.Error.Message}
	}

	url := resp.SecureURL
	if url == "" {
		url = resp.URL
	}
	if url == "" {
		return "", &UploadError{Message: "both secure_url and url are empty"}
	}

	c.log.Debug().Str("public_id", resp.PublicID).Dur("elapsed", time.Since(start)).Msg("image uploaded")
	return url, nil
}
