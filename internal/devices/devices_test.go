package devices

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/voicebridge/voicebridge/internal/clientlib"
)

func newTestSim(t *testing.T) (*clientlib.Sim, uint64) {
	t.Helper()
	sim := clientlib.NewSim()
	if err := sim.Init(clientlib.Callbacks{}, t.TempDir(), t.TempDir()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	handlerID, err := sim.SpawnConnectionHandler()
	if err != nil {
		t.Fatalf("SpawnConnectionHandler: %v", err)
	}
	return sim, handlerID
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestOpenPlaybackUsesIDFirst(t *testing.T) {
	sim, handlerID := newTestSim(t)
	op := NewOpener(sim, quietLogger())

	opened, err := op.OpenPlayback(handlerID)
	if err != nil {
		t.Fatalf("OpenPlayback: %v", err)
	}
	if opened.Specifier != "sim-out-0" {
		t.Errorf("Specifier = %q, want device ID", opened.Specifier)
	}
	if opened.Mode != "SimPlayback" {
		t.Errorf("Mode = %q", opened.Mode)
	}
}

func TestOpenFallsBackToNameAndStops(t *testing.T) {
	sim, handlerID := newTestSim(t)
	sim.PlaybackOpenFailures = map[string]uint32{
		"sim-out-0": clientlib.CodeUnableToOpenDevice,
	}
	op := NewOpener(sim, quietLogger())

	opened, err := op.OpenPlayback(handlerID)
	if err != nil {
		t.Fatalf("OpenPlayback: %v", err)
	}
	if opened.Specifier != "Sim Output" {
		t.Errorf("Specifier = %q, want device name", opened.Specifier)
	}

	// The chain must stop at the first success: the empty specifier is
	// never attempted once the name works.
	for _, call := range sim.Calls() {
		if call == `OpenPlaybackDevice:""` {
			t.Error("empty specifier attempted after a successful open")
		}
	}
}

func TestOpenFallsBackToEmptySpecifier(t *testing.T) {
	sim, handlerID := newTestSim(t)
	sim.CaptureOpenFailures = map[string]uint32{
		"sim-in-0":  clientlib.CodeUnableToOpenDevice,
		"Sim Input": clientlib.CodeUnableToOpenDevice,
	}
	op := NewOpener(sim, quietLogger())

	opened, err := op.OpenCapture(handlerID)
	if err != nil {
		t.Fatalf("OpenCapture: %v", err)
	}
	if opened.Specifier != "" {
		t.Errorf("Specifier = %q, want empty", opened.Specifier)
	}
}

func TestOpenFailsWhenAllSpecifiersFail(t *testing.T) {
	sim, handlerID := newTestSim(t)
	sim.PlaybackOpenFailures = map[string]uint32{
		"sim-out-0":  clientlib.CodeUnableToOpenDevice,
		"Sim Output": clientlib.CodeUnableToOpenDevice,
		"":           clientlib.CodeUnableToOpenDevice,
	}
	op := NewOpener(sim, quietLogger())

	if _, err := op.OpenPlayback(handlerID); err == nil {
		t.Fatal("expected error when every specifier fails")
	}
}

func TestFallbackLogsPreviousError(t *testing.T) {
	sim, handlerID := newTestSim(t)
	sim.PlaybackOpenFailures = map[string]uint32{
		"sim-out-0": clientlib.CodeUnableToOpenDevice,
	}

	var buf strings.Builder
	op := NewOpener(sim, log.New(&buf, "", 0))

	if _, err := op.OpenPlayback(handlerID); err != nil {
		t.Fatalf("OpenPlayback: %v", err)
	}
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("fallback not logged: %q", buf.String())
	}
}
