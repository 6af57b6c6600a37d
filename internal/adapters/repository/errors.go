package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrStoreClosed = errors.New("session store closed")
)
