package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	keyVolumePercent = "playback.volume_percent"
	keyAudioFx       = "playback.audio_fx"
)

// AudioFx is the persisted shape of the audio-effects chain. Values are
// stored as entered; clamping is the playback machine's responsibility.
type AudioFx struct {
	Pan       float64 `json:"pan"`
	Width     float64 `json:"width"`
	SwapLR    bool    `json:"swap_lr"`
	BassDB    float64 `json:"bass_db"`
	ReverbMix float64 `json:"reverb_mix"`
}

// VolumePercent returns the persisted playback volume.
func (s *Store) VolumePercent(ctx context.Context) (int, error) {
	raw, err := s.Get(ctx, keyVolumePercent)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("store: decode %s: %w", keyVolumePercent, err)
	}
	return v, nil
}

// SetVolumePercent persists the playback volume.
func (s *Store) SetVolumePercent(ctx context.Context, v int) error {
	return s.Set(ctx, keyVolumePercent, strconv.Itoa(v))
}

// AudioFx returns the persisted audio-effects settings.
func (s *Store) AudioFx(ctx context.Context) (AudioFx, error) {
	raw, err := s.Get(ctx, keyAudioFx)
	if err != nil {
		return AudioFx{}, err
	}
	var fx AudioFx
	if err := json.Unmarshal([]byte(raw), &fx); err != nil {
		return AudioFx{}, fmt.Errorf("store: decode %s: %w", keyAudioFx, err)
	}
	return fx, nil
}

// SetAudioFx persists the audio-effects settings.
func (s *Store) SetAudioFx(ctx context.Context, fx AudioFx) error {
	raw, err := json.Marshal(fx)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", keyAudioFx, err)
	}
	return s.Set(ctx, keyAudioFx, string(raw))
}
