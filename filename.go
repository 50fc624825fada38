package tcglabels

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-tcglabels/internal/dateutil"
	"github.com/alnah/go-tcglabels/internal/fileutil"
)

// Output naming defaults: tcg_labels_MM-DD-YYYY.pdf.
const (
	DefaultFilenamePrefix = "tcg_labels_"
	DefaultDateFormat     = dateutil.DefaultDateFormat
	DefaultExtension      = "pdf"
)

// OutputFilename builds "<prefix><date>.<ext>" for the calendar date of now.
// Empty arguments take the defaults.
func OutputFilename(now time.Time, prefix, dateFormat, ext string) (string, error) {
	if prefix == "" {
		prefix = DefaultFilenamePrefix
	}
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	if ext == "" {
		ext = DefaultExtension
	}
	ext = strings.TrimPrefix(ext, ".")

	if strings.ContainsAny(prefix, "/\\\x00") {
		return "", fmt.Errorf("%w: prefix %q contains a path separator", ErrOutputName, prefix)
	}
	if err := fileutil.ValidateExtension(ext); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutputName, err)
	}

	date, err := dateutil.FormatForFilename(now, dateFormat)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutputName, err)
	}
	return prefix + date + "." + ext, nil
}
