package imagepkg

import (
	"bytes"
	"image"

	"github.com/youruser/colorpages/internal/util"
)

// DownloadImage fetches a generated image and decodes it.
func DownloadImage(url string, opt util.RetryOptions) (image.Image, error) {
	body, err := util.GetBytes(url, opt)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(body))
}
