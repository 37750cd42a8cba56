package model

// Version is the schema version written by this build. Stored versions are
// compared lexically, so version strings must stay comparable as text.
const Version = "1.0.0"

// Keys of the stats table.
const (
	StatVersion         = "version"
	StatLastSyncBlockID = "last_sync_block_id"
)
