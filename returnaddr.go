package tcglabels

import (
	"fmt"
	"os"
	"strings"
)

// DefaultReturnAddressFile is read from the working directory when a job
// names no return address file.
const DefaultReturnAddressFile = "return_address.txt"

// lineEndings folds Windows and old Mac line endings into "\n".
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// LoadReturnAddress reads path verbatim, newlines included, and returns it
// markup-safe. CRLF and CR line endings count as newlines.
func LoadReturnAddress(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- return address path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReturnAddress, err)
	}
	return FormatMarkup(lineEndings.Replace(string(data))), nil
}
