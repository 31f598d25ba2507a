package services

import (
	cloudinary_client "brickscapital/clients/cloudinary"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

const (
	heroTransformation = "c_fill,g_auto,w_1600,h_900,q_auto,f_auto"
	assetFolder        = "brickscapital/"
)

// AssetServiceI resolves page images to URLs.
type AssetServiceI interface {
	Image(name string) string
}

type localAssets struct{}

// NewLocalAssetService is used when no image CDN is configured. Pages then
// render without a hero image.
func NewLocalAssetService() AssetServiceI {
	return localAssets{}
}

func (localAssets) Image(string) string {
	return ""
}

type cloudinaryAssets struct {
	cld      *cloudinary.Cloudinary
	fallback AssetServiceI
}

// NewCloudinaryAssetService builds delivery URLs under the "brickscapital"
// folder. A URL that cannot be built leaves the page without its image.
func NewCloudinaryAssetService(cld *cloudinary.Cloudinary) AssetServiceI {
	return &cloudinaryAssets{cld: cld, fallback: localAssets{}}
}

func (c *cloudinaryAssets) Image(name string) string {
	url, err := cloudinary_client.ImageURL(c.cld, assetFolder+name, heroTransformation)
	if err != nil {
		zap.L().Error("Error building Cloudinary URL", zap.String("image", name), zap.Error(err))
		return c.fallback.Image(name)
	}
	return url
}
