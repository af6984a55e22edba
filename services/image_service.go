package services

import (
	"strings"

	"campusrent/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ImageResolver turns stored image references into URLs. Absolute URLs pass through;
// anything else is treated as a Cloudinary public id.
type ImageResolver struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

func NewImageResolver(cld *cloudinary.Cloudinary, log logger.Logger) *ImageResolver {
	if cld != nil {
		cld.Config.URL.Secure = true
	}
	return &ImageResolver{cld: cld, logger: log}
}

func (r *ImageResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || r == nil || r.cld == nil || isAbsoluteURL(ref) {
		return ref
	}
	img, err := r.cld.Image(ref)
	if err != nil {
		r.logger.Error("cannot build image asset for %q: %v", ref, err)
		return ref
	}
	url, err := img.String()
	if err != nil {
		r.logger.Error("cannot build image url for %q: %v", ref, err)
		return ref
	}
	return url
}

// ResolveAll returns a new slice; refs is left untouched.
func (r *ImageResolver) ResolveAll(refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = r.Resolve(ref)
	}
	return out
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:")
}
