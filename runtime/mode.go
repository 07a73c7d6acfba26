package runtime

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
)

// Production-mode state. Zero means not explicitly configured; environment
// detection applies until SetProductionMode is called.
const (
	modeUnset int32 = iota
	modeProduction
	modeDevelopment
)

var productionMode atomic.Int32

// modeEnv mirrors the environment variables conventionally used to mark a
// deployment as production.
type modeEnv struct {
	Env    string `env:"ENV"`
	GoEnv  string `env:"GO_ENV"`
	AppEnv string `env:"APP_ENV"`
}

// SetProductionMode explicitly marks the process as running in production
// (or not). Call once during application startup; it takes precedence over
// environment detection.
func SetProductionMode(enabled bool) {
	if enabled {
		productionMode.Store(modeProduction)
		return
	}

	productionMode.Store(modeDevelopment)
}

// ResetProductionMode clears the explicit flag so environment detection
// applies again. Intended for tests.
func ResetProductionMode() {
	productionMode.Store(modeUnset)
}

// IsProductionMode reports whether the process runs in production.
//
// The explicit flag set via SetProductionMode wins. When unset, the probe
// falls back to the ENV, GO_ENV, and APP_ENV environment variables. The
// probe never fails: any error reading the environment degrades to false.
func IsProductionMode() bool {
	switch productionMode.Load() {
	case modeProduction:
		return true
	case modeDevelopment:
		return false
	}

	return detectProductionEnv()
}

func detectProductionEnv() bool {
	var cfg modeEnv
	if err := env.Parse(&cfg); err != nil {
		// Degrade to plain reads rather than propagating a probe failure.
		cfg = modeEnv{
			Env:    os.Getenv("ENV"),
			GoEnv:  os.Getenv("GO_ENV"),
			AppEnv: os.Getenv("APP_ENV"),
		}
	}

	return isProductionValue(cfg.Env) ||
		isProductionValue(cfg.GoEnv) ||
		isProductionValue(cfg.AppEnv)
}

func isProductionValue(value string) bool {
	value = strings.TrimSpace(value)

	return strings.EqualFold(value, "production") || strings.EqualFold(value, "prod")
}
