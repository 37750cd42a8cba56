package postgres

import "errors"

var (
	// ErrVersionMissing is returned when the stats table holds no schema version.
	ErrVersionMissing = errors.New("schema version not found")
	// ErrVersionMismatch is returned when the stored schema is older than this build.
	ErrVersionMismatch = errors.New("schema version is not compatible")
	// ErrCheckpointMissing is returned when the stats table holds no sync checkpoint.
	ErrCheckpointMissing = errors.New("sync checkpoint not found")
	// ErrSyncMismatch is returned when the checkpoint does not name the latest stored block.
	ErrSyncMismatch = errors.New("sync checkpoint does not match latest block")
	// ErrUnknownStatement is returned for a statement name without a template.
	ErrUnknownStatement = errors.New("unknown statement")
)
