package config

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary returns nil, nil when CLOUDINARY_URL is not set; image
// references are then served as stored.
func ConnectCloudinary(cfg *AppConfig) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryURL == "" {
		return nil, nil
	}
	return cloudinary.NewFromURL(cfg.CloudinaryURL)
}
