package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const ListingFolder = "listings"

// UploadImage pushes a single image to Cloudinary and returns its hosted
// URL. Callers skip the upload entirely when no client is configured or
// the image is already hosted.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, image, folder string) (string, error) {
	if strings.TrimSpace(image) == "" {
		return "", fmt.Errorf("empty image reference")
	}

	res, err := cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"carhub"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	return res.SecureURL, nil
}

// IsHostedURL reports whether an image reference already points at a
// remote location and needs no upload.
func IsHostedURL(image string) bool {
	return strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://")
}
