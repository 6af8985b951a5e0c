package port

import "context"

// SettingsStorage persists individual settings fields as JSON values.
// Implementations never fail the caller: faults are logged and reads fall
// back to the caller's default.
type SettingsStorage interface {
	// Load decodes the value stored under key into dst and reports whether it
	// did. dst is left untouched when false.
	Load(ctx context.Context, key string, dst any) bool

	// Save encodes value and stores it under key.
	Save(ctx context.Context, key string, value any)
}
