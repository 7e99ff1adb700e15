// Package playback models what the orchestrator thinks should be playing.
// The machine tracks intent only; it never drives the native audio engine,
// which is the orchestrator's concern once the real audio path is wired in.
package playback

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/voicebridge/voicebridge/internal/config/store"
	"github.com/voicebridge/voicebridge/internal/eventbus"
)

// State enumerates the playback states.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// DefaultVolumePercent is the volume used until SetVolume is called and no
// persisted value exists.
const DefaultVolumePercent = 100

// Volume bounds. Values outside are clamped, never rejected.
const (
	MinVolumePercent = 0
	MaxVolumePercent = 200
)

// Result is the uniform command outcome. Every reachable branch reports
// OK=true; commands are permissive and out-of-order calls are no-ops.
type Result struct {
	OK      bool
	Message string
}

// Status is a point-in-time snapshot of the machine.
type Status struct {
	State         State
	Title         string
	SourceURL     string
	VolumePercent int
}

// DefaultFx is the neutral effect set: centered, unity width, no boost.
func DefaultFx() store.AudioFx {
	return store.AudioFx{Width: 1}
}

// FxUpdate is a partial audio-effects update. Nil fields keep their current
// value; set fields are clamped into range.
type FxUpdate struct {
	Pan       *float64
	Width     *float64
	SwapLR    *bool
	BassDB    *float64
	ReverbMix *float64
}

// Options configures a Machine. All fields are optional: a nil Store skips
// persistence, a nil Bus skips event publication.
type Options struct {
	Logger *log.Logger
	Bus    *eventbus.Bus
	Store  *store.Store
}

// Machine is the playback state machine. One mutex guards all fields; every
// command is a fast in-memory mutation, safe to call concurrently with any
// other command and with connection callbacks.
type Machine struct {
	logger *log.Logger
	bus    *eventbus.Bus
	store  *store.Store

	mu        sync.Mutex
	state     State
	title     string
	sourceURL string
	volume    int
	fx        store.AudioFx
}

// New builds a Machine, restoring persisted volume and effects when a store
// is provided. Persisted values are clamped on the way in so an out-of-range
// value written by an older build cannot leak through.
func New(opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	m := &Machine{
		logger: logger,
		bus:    opts.Bus,
		store:  opts.Store,
		state:  StateIdle,
		volume: DefaultVolumePercent,
		fx:     DefaultFx(),
	}

	if opts.Store != nil {
		ctx := context.Background()
		if v, err := opts.Store.VolumePercent(ctx); err == nil {
			m.volume = clampVolume(v)
		} else if !store.IsNotFound(err) {
			logger.Printf("[playback] restore volume: %v", err)
		}
		if fx, err := opts.Store.AudioFx(ctx); err == nil {
			m.fx = clampFx(fx)
		} else if !store.IsNotFound(err) {
			logger.Printf("[playback] restore audio fx: %v", err)
		}
	}

	return m
}

// Play sets the now-playing fields and forces the Playing state. A Play while
// already Playing overwrites the current track.
func (m *Machine) Play(title, sourceURL string) Result {
	m.mu.Lock()
	m.state = StatePlaying
	m.title = title
	m.sourceURL = sourceURL
	m.mu.Unlock()

	m.publish(eventbus.PlaybackStarted)
	return Result{OK: true, Message: fmt.Sprintf("playing %q", title)}
}

// Pause transitions Playing to Paused. Any other state is a no-op.
func (m *Machine) Pause() Result {
	m.mu.Lock()
	changed := m.state == StatePlaying
	if changed {
		m.state = StatePaused
	}
	m.mu.Unlock()

	if !changed {
		return Result{OK: true, Message: "not playing"}
	}
	m.publish(eventbus.PlaybackPaused)
	return Result{OK: true, Message: "paused"}
}

// Resume transitions Paused to Playing. Any other state is a no-op.
func (m *Machine) Resume() Result {
	m.mu.Lock()
	changed := m.state == StatePaused
	if changed {
		m.state = StatePlaying
	}
	m.mu.Unlock()

	if !changed {
		return Result{OK: true, Message: "not paused"}
	}
	m.publish(eventbus.PlaybackResumed)
	return Result{OK: true, Message: "resumed"}
}

// Stop moves to Idle from any state and clears the now-playing fields.
func (m *Machine) Stop() Result {
	m.clearNowPlaying()
	m.publish(eventbus.PlaybackStopped)
	return Result{OK: true, Message: "stopped"}
}

// Skip behaves like Stop; the orchestrator issues the next Play itself.
func (m *Machine) Skip() Result {
	m.clearNowPlaying()
	m.publish(eventbus.PlaybackSkipped)
	return Result{OK: true, Message: "skipped"}
}

func (m *Machine) clearNowPlaying() {
	m.mu.Lock()
	m.state = StateIdle
	m.title = ""
	m.sourceURL = ""
	m.mu.Unlock()
}

// SetVolume clamps percent into [0, 200], stores it, and persists it.
// Persistence failures are logged and ignored.
func (m *Machine) SetVolume(percent int) Result {
	clamped := clampVolume(percent)

	m.mu.Lock()
	m.volume = clamped
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.SetVolumePercent(context.Background(), clamped); err != nil {
			m.logger.Printf("[playback] persist volume: %v", err)
		}
	}
	m.publish(eventbus.PlaybackVolume)
	return Result{OK: true, Message: fmt.Sprintf("volume %d%%", clamped)}
}

// Status returns a snapshot of the machine.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{
		State:         m.state,
		Title:         m.title,
		SourceURL:     m.sourceURL,
		VolumePercent: m.volume,
	}
}

// SetFx applies a partial effects update, clamping each provided field, then
// persists and returns the resulting effect set.
func (m *Machine) SetFx(update FxUpdate) store.AudioFx {
	m.mu.Lock()
	if update.Pan != nil {
		m.fx.Pan = clampFloat(*update.Pan, -1, 1)
	}
	if update.Width != nil {
		m.fx.Width = clampFloat(*update.Width, 0, 3)
	}
	if update.SwapLR != nil {
		m.fx.SwapLR = *update.SwapLR
	}
	if update.BassDB != nil {
		m.fx.BassDB = clampFloat(*update.BassDB, 0, 18)
	}
	if update.ReverbMix != nil {
		m.fx.ReverbMix = clampFloat(*update.ReverbMix, 0, 1)
	}
	fx := m.fx
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.SetAudioFx(context.Background(), fx); err != nil {
			m.logger.Printf("[playback] persist audio fx: %v", err)
		}
	}
	m.publish(eventbus.PlaybackFx)
	return fx
}

// Fx returns the current effect set.
func (m *Machine) Fx() store.AudioFx {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fx
}

func (m *Machine) publish(change eventbus.PlaybackChange) {
	if m.bus == nil {
		return
	}
	st := m.Status()
	eventbus.Publish(context.Background(), m.bus, eventbus.PlaybackChanged, eventbus.SourcePlayback, eventbus.PlaybackChangedEvent{
		Change:        change,
		Title:         st.Title,
		SourceURL:     st.SourceURL,
		VolumePercent: st.VolumePercent,
	})
}

func clampVolume(percent int) int {
	if percent < MinVolumePercent {
		return MinVolumePercent
	}
	if percent > MaxVolumePercent {
		return MaxVolumePercent
	}
	return percent
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFx(fx store.AudioFx) store.AudioFx {
	fx.Pan = clampFloat(fx.Pan, -1, 1)
	fx.Width = clampFloat(fx.Width, 0, 3)
	fx.BassDB = clampFloat(fx.BassDB, 0, 18)
	fx.ReverbMix = clampFloat(fx.ReverbMix, 0, 1)
	return fx
}
