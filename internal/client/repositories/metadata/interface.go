// Package metadata stores small per-device settings such as sync checkpoints
// and the device id.
package metadata

import (
	"context"
)

// Repository reads and writes metadata values. Missing keys read as the zero
// value, never as an error.
type Repository interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string) error
	GetInt64(ctx context.Context, key string) (int64, error)
	// RaiseInt64 stores max(current, value) and returns the stored value.
	RaiseInt64(ctx context.Context, key string, value int64) (int64, error)
}

// Well-known keys.
const (
	KeyDeviceID = "device_id"
	KeyLastUser = "last_user"
)

// CheckpointKey is the key of a user's sync checkpoint.
func CheckpointKey(userID string) string {
	return "checkpoint:" + userID
}
