package assets

import (
	"embed"
	"fmt"
	"strings"
)

// Embedded file names, which are also the names written by Scaffold.
const (
	ReturnAddressFile = "return_address.txt"
	TemplateFile      = "label_template.html"
	StylesheetFile    = "style.css"
)

//go:embed defaults
var defaults embed.FS

// Load returns the embedded asset called name. The label template is looked
// up for the given dialect; the other files are shared by every dialect.
func Load(name, dialect string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := "common"
	if name == TemplateFile {
		if err := validateDialect(dialect); err != nil {
			return nil, err
		}
		dir = dialect
	}

	data, err := defaults.ReadFile("defaults/" + dir + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}
	return data, nil
}

// Names lists the assets Scaffold writes, in the order it writes them.
func Names() []string {
	return []string{ReturnAddressFile, TemplateFile, StylesheetFile}
}

// ValidateAssetName checks that name is a bare file name.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func validateDialect(dialect string) error {
	if dialect == "" || dialect == "common" || strings.ContainsAny(dialect, "/\\.") {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	if _, err := defaults.ReadDir("defaults/" + dialect); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	return nil
}
