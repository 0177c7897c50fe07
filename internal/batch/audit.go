package batch

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/youruser/colorpages/internal/util"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

type AuditOptions struct {
	Prefix     string
	CanvasSize int
	Threshold  int
	Accept     float64
}

// Flagged is a file whose subject spans less than the accepted occupancy.
type Flagged struct {
	File      string
	Occupancy imagepkg.Occupancy
}

// AuditDir measures every PNG in dir and returns the small ones, sorted by
// filename. Unreadable files and files without content are logged and left out.
func AuditDir(dir string, opts AuditOptions) ([]Flagged, error) {
	files, err := util.ListFiles(dir, opts.Prefix, ".png")
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"dir": dir, "files": len(files), "accept": opts.Accept}).Info("auditing subject size")

	var small []Flagged
	for _, name := range files {
		path := filepath.Join(dir, name)
		img, err := imagepkg.Load(path)
		if err != nil {
			logrus.WithField("file", name).WithError(err).Warn("skipping unreadable image")
			continue
		}
		occ := imagepkg.Audit(img, opts.CanvasSize, opts.Threshold)
		if !occ.Small(opts.Accept) {
			continue
		}
		small = append(small, Flagged{File: path, Occupancy: occ})
		logrus.WithFields(logrus.Fields{
			"file":      name,
			"occupancy": occ.Fraction,
			"w":         occ.ContentWidth,
			"h":         occ.ContentHeight,
		}).Info("SMALL")
	}

	logrus.WithFields(logrus.Fields{"total": len(files), "small": len(small)}).Info("audit finished")
	return small, nil
}

// Remediate normalizes flagged files in place and returns how many were rewritten.
func Remediate(flagged []Flagged, spec imagepkg.CanvasSpec) int {
	fixed := 0
	for _, f := range flagged {
		if err := NormalizeFile(f.File, f.File, spec); err != nil {
			logrus.WithField("file", f.File).WithError(err).Warn("remediation failed")
			continue
		}
		fixed++
	}
	return fixed
}
