// Package observability provides hooks for instrumenting conversions.
//
// The menu controller and the one-shot convert command report every
// completed conversion and every rejected input through the registered
// [ConversionHooks]. By default the hooks do nothing; the CLI installs an
// implementation that writes debug-level log lines.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConversionHooks(&myHooks{})
//	    // ... run application
//	}
//
// Callers emit events through the registry:
//
//	observability.Conversion().OnConversion(ctx, "temperature", "c2f", elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// Input kinds reported through OnInvalidInput.
const (
	InputKindOption = "option"
	InputKindNumber = "number"
)

// ConversionHooks receives events from the converter front ends.
type ConversionHooks interface {
	// OnConversion records a successful conversion.
	OnConversion(ctx context.Context, category, direction string, duration time.Duration)

	// OnInvalidInput records input that was rejected. kind is one of the
	// InputKind constants and raw is the text exactly as typed.
	OnInvalidInput(ctx context.Context, kind, raw string)
}

// NoopConversionHooks is a no-op implementation of ConversionHooks.
type NoopConversionHooks struct{}

func (NoopConversionHooks) OnConversion(context.Context, string, string, time.Duration) {}
func (NoopConversionHooks) OnInvalidInput(context.Context, string, string)              {}

var (
	conversionHooks ConversionHooks = NoopConversionHooks{}
	hooksMu         sync.RWMutex
)

// SetConversionHooks registers custom conversion hooks. A nil value is ignored.
// This should be called once at application startup.
func SetConversionHooks(h ConversionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		conversionHooks = h
	}
}

// Conversion returns the registered conversion hooks.
func Conversion() ConversionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return conversionHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	conversionHooks = NoopConversionHooks{}
}
