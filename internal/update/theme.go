package update

import (
	"context"

	"github.com/rsinha/todotui/internal/storage"
)

// ThemeKey is the key-value store slot for the dark-mode preference. It is
// independent of the task collection.
const ThemeKey = "darkMode"

const (
	themeEnabled  = "enabled"
	themeDisabled = "disabled"
)

func loadThemePreference(ctx context.Context, store storage.KeyValueStore) bool {
	value, err := store.Get(ctx, ThemeKey)
	if err != nil {
		return false
	}
	return value == themeEnabled
}

func persistThemePreference(ctx context.Context, store storage.KeyValueStore, dark bool) {
	value := themeDisabled
	if dark {
		value = themeEnabled
	}
	_ = store.Set(ctx, ThemeKey, value)
}
