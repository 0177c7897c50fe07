package imagepkg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoContentDetected = errors.New("no content detected")
	ErrMissingPanel      = errors.New("missing panel")
	ErrUnreadableImage   = errors.New("unreadable image")
	ErrTemplateLoad      = errors.New("template load failure")
	ErrInvalidCanvas     = errors.New("invalid canvas spec")
)

// MissingPanelError lists the panel files absent from a subject folder.
type MissingPanelError struct {
	Folder string
	Files  []string
}

func (e *MissingPanelError) Error() string {
	return fmt.Sprintf("missing panels in %s: %s", e.Folder, strings.Join(e.Files, ", "))
}

func (e *MissingPanelError) Is(target error) bool {
	return target == ErrMissingPanel
}
