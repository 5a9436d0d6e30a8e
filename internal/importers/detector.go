// Package importers drives device activity files through the
// extract → normalize → map → persist pipeline. Each file is processed
// independently; one bad file never aborts the batch.
package importers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/gpx"
	"github.com/ndrozd/coachfit/internal/tcx"
)

// ErrUnsupportedFormat marks files whose extension is not recognized.
// Detection is by declared extension only; there is no content sniffing.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies one of the two supported device file schemas.
type Format string

const (
	FormatTCX Format = "tcx"
	FormatGPX Format = "gpx"
)

// DetectFormat picks a parsing strategy from the file name's extension,
// case-insensitively.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".tcx":
		return FormatTCX, nil
	case ".gpx":
		return FormatGPX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ExtractActivity runs the extractor matching the detected format.
func ExtractActivity(format Format, r io.Reader) (*activity.Activity, error) {
	switch format {
	case FormatTCX:
		return tcx.Extract(r)
	case FormatGPX:
		return gpx.Extract(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}
