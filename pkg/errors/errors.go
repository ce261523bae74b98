package errors

import "errors"

var (
	ErrWorkspaceUnavailable = errors.New("cannot create flash workspace")
	ErrArtifactWrite        = errors.New("cannot write flash artifact")
	ErrFlasherStart         = errors.New("cannot start memtool")
)
