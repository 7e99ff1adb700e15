// Package devices selects and opens audio devices for a connection handler.
//
// Device identifiers reported by the client library are not always accepted
// back by the open calls (some audio backends report IDs that cannot be
// reopened). Opening therefore walks a fallback chain: the device ID first,
// the human-readable name second, and finally the empty specifier which asks
// the backend for its own default.
package devices

import (
	"fmt"
	"log"

	"github.com/voicebridge/voicebridge/internal/clientlib"
)

// Kind distinguishes the two device directions.
type Kind string

const (
	Playback Kind = "playback"
	Capture  Kind = "capture"
)

// Opened describes a successfully opened device.
type Opened struct {
	Kind      Kind
	Mode      string
	Device    clientlib.Device
	Specifier string // the specifier that worked: ID, name, or ""
}

// Opener opens both device directions for a handler.
type Opener struct {
	lib    clientlib.Library
	logger *log.Logger
}

// NewOpener builds an Opener. A nil logger falls back to log.Default().
func NewOpener(lib clientlib.Library, logger *log.Logger) *Opener {
	if logger == nil {
		logger = log.Default()
	}
	return &Opener{lib: lib, logger: logger}
}

// OpenPlayback opens the default playback device for handlerID.
func (o *Opener) OpenPlayback(handlerID uint64) (Opened, error) {
	mode, err := o.lib.DefaultPlaybackMode()
	if err != nil {
		return Opened{}, fmt.Errorf("devices: default playback mode: %w", err)
	}
	dev, err := o.lib.DefaultPlaybackDevice(mode)
	if err != nil {
		return Opened{}, fmt.Errorf("devices: default playback device: %w", err)
	}
	spec, err := o.open(Playback, dev, func(specifier string) error {
		return o.lib.OpenPlaybackDevice(handlerID, mode, specifier)
	})
	if err != nil {
		return Opened{}, err
	}
	return Opened{Kind: Playback, Mode: mode, Device: dev, Specifier: spec}, nil
}

// OpenCapture opens the default capture device for handlerID.
func (o *Opener) OpenCapture(handlerID uint64) (Opened, error) {
	mode, err := o.lib.DefaultCaptureMode()
	if err != nil {
		return Opened{}, fmt.Errorf("devices: default capture mode: %w", err)
	}
	dev, err := o.lib.DefaultCaptureDevice(mode)
	if err != nil {
		return Opened{}, fmt.Errorf("devices: default capture device: %w", err)
	}
	spec, err := o.open(Capture, dev, func(specifier string) error {
		return o.lib.OpenCaptureDevice(handlerID, mode, specifier)
	})
	if err != nil {
		return Opened{}, err
	}
	return Opened{Kind: Capture, Mode: mode, Device: dev, Specifier: spec}, nil
}

// open walks the ID → name → empty fallback chain, stopping at the first
// specifier the backend accepts. Duplicate and empty specifiers earlier in
// the chain are skipped so each distinct value is attempted once.
func (o *Opener) open(kind Kind, dev clientlib.Device, openFn func(string) error) (string, error) {
	chain := make([]string, 0, 3)
	if dev.ID != "" {
		chain = append(chain, dev.ID)
	}
	if dev.Name != "" && dev.Name != dev.ID {
		chain = append(chain, dev.Name)
	}
	chain = append(chain, "")

	var lastErr error
	for _, spec := range chain {
		err := openFn(spec)
		if err == nil {
			if lastErr != nil {
				o.logger.Printf("[devices] %s device opened with fallback specifier %q (previous attempt: %v)", kind, spec, lastErr)
			}
			return spec, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("devices: open %s device %q: %w", kind, dev.Name, lastErr)
}
