package playback

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/voicebridge/voicebridge/internal/config/store"
	"github.com/voicebridge/voicebridge/internal/eventbus"
)

func newMachine(t *testing.T) *Machine {
	t.Helper()
	return New(Options{})
}

func TestPlayForcesPlayingAndOverwrites(t *testing.T) {
	m := newMachine(t)

	res := m.Play("Song A", "https://example.com/a")
	if !res.OK {
		t.Fatalf("Play not OK: %+v", res)
	}
	st := m.Status()
	if st.State != StatePlaying || st.Title != "Song A" || st.SourceURL != "https://example.com/a" {
		t.Errorf("status = %+v", st)
	}
	if st.VolumePercent != DefaultVolumePercent {
		t.Errorf("VolumePercent = %d, want %d", st.VolumePercent, DefaultVolumePercent)
	}

	// Play while already playing overwrites the track.
	m.Play("Song B", "https://example.com/b")
	st = m.Status()
	if st.State != StatePlaying || st.Title != "Song B" {
		t.Errorf("status after overwrite = %+v", st)
	}
}

func TestPauseOnlyWhenPlaying(t *testing.T) {
	m := newMachine(t)

	res := m.Pause()
	if !res.OK {
		t.Errorf("Pause while idle must still report OK: %+v", res)
	}
	if st := m.Status(); st.State != StateIdle {
		t.Errorf("state = %q, want idle", st.State)
	}

	m.Play("Song A", "src")
	m.Pause()
	st := m.Status()
	if st.State != StatePaused {
		t.Errorf("state = %q, want paused", st.State)
	}
	if st.Title != "Song A" || st.SourceURL != "src" {
		t.Errorf("now-playing changed by Pause: %+v", st)
	}

	// Pause while paused stays paused.
	if res := m.Pause(); !res.OK {
		t.Errorf("second Pause not OK: %+v", res)
	}
	if st := m.Status(); st.State != StatePaused {
		t.Errorf("state = %q, want paused", st.State)
	}
}

func TestResumeOnlyWhenPaused(t *testing.T) {
	m := newMachine(t)

	if res := m.Resume(); !res.OK {
		t.Errorf("Resume while idle must report OK: %+v", res)
	}
	if st := m.Status(); st.State != StateIdle {
		t.Errorf("state = %q, want idle", st.State)
	}

	m.Play("Song A", "src")
	m.Pause()
	m.Resume()
	if st := m.Status(); st.State != StatePlaying {
		t.Errorf("state = %q, want playing", st.State)
	}
}

func TestStopAndSkipClearNowPlaying(t *testing.T) {
	for _, op := range []string{"stop", "skip"} {
		m := newMachine(t)
		m.SetVolume(80)
		m.Play("Song A", "src")

		if op == "stop" {
			m.Stop()
		} else {
			m.Skip()
		}

		st := m.Status()
		if st.State != StateIdle {
			t.Errorf("%s: state = %q, want idle", op, st.State)
		}
		if st.Title != "" || st.SourceURL != "" {
			t.Errorf("%s: now-playing not cleared: %+v", op, st)
		}
		if st.VolumePercent != 80 {
			t.Errorf("%s: volume changed: %d", op, st.VolumePercent)
		}
	}
}

func TestSetVolumeClamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{75, 75},
		{200, 200},
		{500, 200},
	}
	m := newMachine(t)
	for _, tc := range tests {
		res := m.SetVolume(tc.in)
		if !res.OK {
			t.Errorf("SetVolume(%d) not OK: %+v", tc.in, res)
		}
		if got := m.Status().VolumePercent; got != tc.want {
			t.Errorf("SetVolume(%d) stored %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCommandReplayIsDeterministic(t *testing.T) {
	type step struct {
		op    string
		title string
	}
	script := []step{
		{op: "play", title: "A"},
		{op: "pause"},
		{op: "resume"},
		{op: "play", title: "B"},
		{op: "skip"},
		{op: "resume"},
		{op: "play", title: "C"},
		{op: "stop"},
		{op: "pause"},
	}

	run := func() Status {
		m := newMachine(t)
		for _, s := range script {
			switch s.op {
			case "play":
				m.Play(s.title, "src/"+s.title)
			case "pause":
				m.Pause()
			case "resume":
				m.Resume()
			case "stop":
				m.Stop()
			case "skip":
				m.Skip()
			}
		}
		return m.Status()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("replay diverged: %+v vs %+v", first, second)
	}
	if first.State != StateIdle || first.Title != "" {
		t.Errorf("final state = %+v, want idle with cleared now-playing", first)
	}
}

func TestFxStartsNeutral(t *testing.T) {
	m := newMachine(t)
	fx := m.Fx()
	if fx.Pan != 0 || fx.Width != 1 || fx.SwapLR || fx.BassDB != 0 || fx.ReverbMix != 0 {
		t.Errorf("initial fx = %+v, want neutral", fx)
	}
}

func TestSetFxClampsAndMergesPartially(t *testing.T) {
	m := newMachine(t)

	pan := 2.5
	width := -1.0
	fx := m.SetFx(FxUpdate{Pan: &pan, Width: &width})
	if fx.Pan != 1 {
		t.Errorf("Pan = %v, want clamped to 1", fx.Pan)
	}
	if fx.Width != 0 {
		t.Errorf("Width = %v, want clamped to 0", fx.Width)
	}

	// A later partial update leaves unrelated fields alone.
	bass := 25.0
	swap := true
	fx = m.SetFx(FxUpdate{BassDB: &bass, SwapLR: &swap})
	if fx.BassDB != 18 {
		t.Errorf("BassDB = %v, want clamped to 18", fx.BassDB)
	}
	if !fx.SwapLR {
		t.Error("SwapLR not applied")
	}
	if fx.Pan != 1 {
		t.Errorf("Pan = %v, partial update must not reset it", fx.Pan)
	}

	reverb := 0.4
	fx = m.SetFx(FxUpdate{ReverbMix: &reverb})
	if fx.ReverbMix != 0.4 {
		t.Errorf("ReverbMix = %v, want 0.4", fx.ReverbMix)
	}
}

func TestVolumeAndFxPersistAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	st, err := store.Open(store.Options{Path: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	m := New(Options{Store: st})
	m.SetVolume(150)
	pan := -0.5
	m.SetFx(FxUpdate{Pan: &pan})

	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st2, err := store.Open(store.Options{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	m2 := New(Options{Store: st2})
	if got := m2.Status().VolumePercent; got != 150 {
		t.Errorf("restored volume = %d, want 150", got)
	}
	if got := m2.Fx().Pan; got != -0.5 {
		t.Errorf("restored pan = %v, want -0.5", got)
	}
}

func TestRestoreClampsPersistedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	st, err := store.Open(store.Options{Path: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	// Simulate an older build writing out-of-range values.
	ctx := context.Background()
	if err := st.SetVolumePercent(ctx, 9000); err != nil {
		t.Fatal(err)
	}
	if err := st.SetAudioFx(ctx, store.AudioFx{Pan: -7, BassDB: 100}); err != nil {
		t.Fatal(err)
	}

	m := New(Options{Store: st})
	if got := m.Status().VolumePercent; got != 200 {
		t.Errorf("restored volume = %d, want clamped 200", got)
	}
	fx := m.Fx()
	if fx.Pan != -1 || fx.BassDB != 18 {
		t.Errorf("restored fx not clamped: %+v", fx)
	}
}

func TestCommandsPublishPlaybackEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Shutdown()

	sub := eventbus.SubscribeTo(bus, eventbus.PlaybackChanged)
	defer sub.Close()

	m := New(Options{Bus: bus})
	m.Play("Song A", "src")

	env := <-sub.C()
	if env.Payload.Change != eventbus.PlaybackStarted {
		t.Errorf("Change = %q, want started", env.Payload.Change)
	}
	if env.Payload.Title != "Song A" {
		t.Errorf("Title = %q", env.Payload.Title)
	}
}
