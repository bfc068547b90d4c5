package update

import (
	"os"
	"path/filepath"
	"strings"
)

type RuntimeConfig struct {
	DBPath               string
	DesktopNotifications bool
	Desktop              DesktopNotifier
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:               defaultDBPath(),
		DesktopNotifications: false,
		Desktop:              NoopDesktopNotifier{},
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TODOTUI_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("TODOTUI_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
		if v {
			cfg.Desktop = ExecDesktopNotifier{}
		}
	}
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todotui.db"
	}
	return filepath.Join(home, ".todotui", "todotui.db")
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
