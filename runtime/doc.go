// Package runtime exposes process-wide runtime mode state.
//
// The assertion engine consults IsProductionMode to decide whether
// stripped validator families replace diagnostic messages with their
// generic label. Applications set the mode explicitly at startup:
//
//	runtime.SetProductionMode(cfg.Production)
//
// When the mode has not been set, detection falls back to the ENV, GO_ENV,
// and APP_ENV environment variables ("production" or "prod",
// case-insensitive). The probe is side-effect-free and never fails; an
// unreadable environment reads as not-production.
package runtime
