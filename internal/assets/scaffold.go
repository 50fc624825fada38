package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// filePermissions is rw-r--r--.
const filePermissions = 0o644

// ScaffoldResult reports what Scaffold did, by file name.
type ScaffoldResult struct {
	Written []string
	Skipped []string
}

// Scaffold writes the default assets for dialect into dir. Existing files are
// left alone and listed in Skipped.
func Scaffold(dir, dialect string) (*ScaffoldResult, error) {
	if err := validateDialect(dialect); err != nil {
		return nil, err
	}

	res := &ScaffoldResult{}
	for _, name := range Names() {
		data, err := Load(name, dialect)
		if err != nil {
			return res, err
		}

		written, err := writeNew(filepath.Join(dir, name), data)
		if err != nil {
			return res, fmt.Errorf("writing %s: %w", name, err)
		}
		if written {
			res.Written = append(res.Written, name)
		} else {
			res.Skipped = append(res.Skipped, name)
		}
	}
	return res, nil
}

// writeNew creates path exclusively. It reports false, nil when path exists.
func writeNew(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions) // #nosec G304 -- path is dir + embedded name
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return false, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return false, err
	}
	return true, nil
}
