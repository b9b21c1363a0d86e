package storage

import (
	"context"
	"log"

	"github.com/campusconnect/campus_api/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary hosts lost-and-found item photos. The client is nil when
// credentials are not configured; UploadImage then reports
// ErrNotConfigured instead of calling out.
type Cloudinary struct {
	CLD *cloudinary.Cloudinary
}

func NewCloudinary(cfg *config.Config) *Cloudinary {
	if cfg.CloudinaryCloudName == "" {
		log.Println("[Cloudinary]: no credentials configured, image uploads disabled")
		return &Cloudinary{}
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Printf("[Cloudinary]: failed to initialize: %v", err)
		return &Cloudinary{}
	}

	return &Cloudinary{CLD: cld}
}

func (c *Cloudinary) Enabled() bool {
	return c != nil && c.CLD != nil
}

func (c *Cloudinary) UploadImage(ctx context.Context, file string, folder string) (string, error) {
	resp, err := c.CLD.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
