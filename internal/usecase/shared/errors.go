package shared

import "parkspace/internal/pkg/errs"

// Sentinels shared by both the command and query sides.
var (
	ErrNotFound         = errs.New("not found")
	ErrPermissionDenied = errs.New("permission denied")
)
