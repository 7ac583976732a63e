package core

import (
	"errors"
)

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrUnknownAssetType = errors.New("unknown asset type")
	ErrNoLoader         = errors.New("no loader registered for asset type")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrNoWorkers        = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNotInitialized   = errors.New("subsystem not initialized")
)
