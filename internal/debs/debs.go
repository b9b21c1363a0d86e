package deps

import (
	"github.com/campusconnect/campus_api/config"
	"github.com/campusconnect/campus_api/util/storage"
)

type Dependencies struct {
	Cloudinary *storage.Cloudinary
}

func New(cfg *config.Config) *Dependencies {
	cloudinary := storage.NewCloudinary(cfg)

	deps := Dependencies{
		Cloudinary: cloudinary,
	}
	return &deps
}
