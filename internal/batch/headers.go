package batch

import (
	"errors"
	"image"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/youruser/colorpages/internal/util"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

// HeaderOptions configures a header batch.
type HeaderOptions struct {
	TemplatePath string
	PanelSize    image.Point
	// NewRand returns the shuffle source for one folder. Nil means a fresh
	// time-seeded source per folder.
	NewRand func() *rand.Rand
}

// Summary counts folder outcomes of a batch run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

func (o HeaderOptions) rng() *rand.Rand {
	if o.NewRand != nil {
		return o.NewRand()
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SeededRand returns a NewRand that yields identically seeded sources.
func SeededRand(seed int64) func() *rand.Rand {
	return func() *rand.Rand { return rand.New(rand.NewSource(seed)) }
}

// ProcessFolder composes and saves header.png for one subject folder.
func ProcessFolder(folder string, opts HeaderOptions) (string, error) {
	out, order, err := imagepkg.ComposeHeader(folder, opts.TemplatePath, opts.PanelSize, opts.rng())
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"folder": folder, "order": order}).Debug("panels shuffled")

	dest := filepath.Join(folder, imagepkg.HeaderFile)
	if err := imagepkg.Save(out, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// RunHeaders composes a header for every immediate subdirectory of root.
// Folder failures are logged and counted; only a template failure aborts
// the run, since every later folder would fail the same way.
func RunHeaders(root string, opts HeaderOptions) (Summary, error) {
	var sum Summary
	log := logrus.WithField("root", root)
	log.Info("scanning assets")

	if _, err := imagepkg.LoadTemplate(opts.TemplatePath); err != nil {
		return sum, err
	}

	folders, err := util.SubDirs(root)
	if err != nil {
		return sum, err
	}

	for _, folder := range folders {
		entry := logrus.WithField("folder", folder)
		dest, err := ProcessFolder(folder, opts)

		var missing *imagepkg.MissingPanelError
		switch {
		case err == nil:
			sum.Processed++
			entry.WithFields(logrus.Fields{"status": "OK", "output": dest}).Info("header saved")
		case errors.As(err, &missing):
			sum.Skipped++
			entry.WithFields(logrus.Fields{"status": "SKIP", "missing": missing.Files}).Warn("missing panels")
		case errors.Is(err, imagepkg.ErrTemplateLoad):
			log.WithError(err).Error("template unavailable, aborting")
			return sum, err
		default:
			sum.Failed++
			entry.WithField("status", "SKIP").WithError(err).Warn("header failed")
		}
	}

	log.WithFields(logrus.Fields{
		"processed": sum.Processed,
		"skipped":   sum.Skipped,
		"failed":    sum.Failed,
	}).Info("done")
	return sum, nil
}
