package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrAssetNotFound indicates no embedded asset has the requested name.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUnknownDialect indicates no embedded label template exists for the dialect.
	ErrUnknownDialect = errors.New("unknown template dialect")

	// ErrInvalidAssetName indicates the asset name contains path separators
	// or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
