package cloudinary_client

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New parses a CLOUDINARY_URL. No request is made.
func New(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromURL(cloudinaryURL)
}

// ImageURL builds the delivery URL of publicID with an optional transformation
// such as "c_fill,w_1600".
func ImageURL(cld *cloudinary.Cloudinary, publicID, transformation string) (string, error) {
	img, err := cld.Image(publicID)
	if err != nil {
		return "", err
	}
	img.Transformation = transformation
	return img.String()
}
