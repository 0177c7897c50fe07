package batch

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/youruser/colorpages/internal/util"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

// FetchPanel downloads a generated image and stores it as the given style
// panel inside folder. Responses that do not decode as images are rejected
// before anything is written.
func FetchPanel(url, folder, style string, opt util.RetryOptions) (string, error) {
	if !slices.Contains(imagepkg.Styles, style) {
		return "", fmt.Errorf("unknown panel style %q", style)
	}
	img, err := imagepkg.DownloadImage(url, opt)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(folder, style+".png")
	if err := imagepkg.Save(img, dest); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"url": url, "output": dest}).Info("panel saved")
	return dest, nil
}
