package batch

import (
	"errors"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/youruser/colorpages/internal/util"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

// NormalizeOptions configures NormalizeDir.
type NormalizeOptions struct {
	Prefix string
	// OutputDir receives the results; empty means overwrite in place.
	OutputDir string
	Spec      imagepkg.CanvasSpec
}

// NormalizeDir normalizes every PNG in dir. Images without detectable
// content are skipped.
func NormalizeDir(dir string, opts NormalizeOptions) (Summary, error) {
	var sum Summary
	files, err := util.ListFiles(dir, opts.Prefix, ".png")
	if err != nil {
		return sum, err
	}
	out := opts.OutputDir
	if out == "" {
		out = dir
	}

	for _, name := range files {
		err := NormalizeFile(filepath.Join(dir, name), filepath.Join(out, name), opts.Spec)
		entry := logrus.WithField("file", name)
		switch {
		case err == nil:
			sum.Processed++
		case errors.Is(err, imagepkg.ErrNoContentDetected):
			sum.Skipped++
			entry.Warn("no content detected, skipping")
		default:
			sum.Failed++
			entry.WithError(err).Warn("normalize failed")
		}
	}
	logrus.WithFields(logrus.Fields{
		"processed": sum.Processed,
		"skipped":   sum.Skipped,
		"failed":    sum.Failed,
	}).Info("normalize finished")
	return sum, nil
}

// NormalizeFile normalizes src into dst. src and dst may be the same path.
func NormalizeFile(src, dst string, spec imagepkg.CanvasSpec) error {
	img, err := imagepkg.Load(src)
	if err != nil {
		return err
	}
	out, err := imagepkg.Normalize(img, spec)
	if err != nil {
		return err
	}
	return imagepkg.Save(out, dst)
}
