package connection

import (
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/voicebridge/voicebridge/internal/clientlib"
	"github.com/voicebridge/voicebridge/internal/eventbus"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testParams(t *testing.T) Params {
	t.Helper()
	return Params{
		Host:         "voice.example",
		Port:         9987,
		Nickname:     "voicebridge",
		IdentityFile: filepath.Join(t.TempDir(), "identity"),
		LogDir:       t.TempDir(),
		ResourceDir:  t.TempDir(),
	}
}

func waitForState(t *testing.T, m *Manager, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("state = %q, want %q", m.State(), want)
}

func TestStartConnectsAndJoinsChannelOnce(t *testing.T) {
	sim := clientlib.NewSim()
	params := testParams(t)
	params.ChannelID = 5
	params.ChannelPassword = "secret"

	m := New(Options{Lib: sim, Logger: quietLogger(), Params: params})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateConnected)

	moves := sim.Moves()
	if len(moves) != 1 {
		t.Fatalf("moves = %d, want 1", len(moves))
	}
	if moves[0].ChannelID != 5 || moves[0].Password != "secret" || moves[0].ClientID != 42 {
		t.Errorf("move = %+v", moves[0])
	}

	// A repeated established callback must not trigger a second join.
	sim.EmitStatus(moves[0].HandlerID, clientlib.StatusEstablished, clientlib.CodeOK)
	if got := len(sim.Moves()); got != 1 {
		t.Errorf("moves after repeat = %d, want 1", got)
	}
}

func TestStartWithoutChannelDoesNotMove(t *testing.T) {
	sim := clientlib.NewSim()
	m := New(Options{Lib: sim, Logger: quietLogger(), Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateConnected)
	if got := len(sim.Moves()); got != 0 {
		t.Errorf("moves = %d, want 0", got)
	}
}

func TestCallbacksIgnoreForeignHandler(t *testing.T) {
	sim := clientlib.NewSim()
	m := New(Options{Lib: sim, Logger: quietLogger(), Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateConnected)

	// A disconnect for a handler we do not own must not change state.
	sim.EmitStatus(999, clientlib.StatusDisconnected, clientlib.CodeConnectionFailed)
	if got := m.State(); got != StateConnected {
		t.Errorf("state = %q, want connected", got)
	}
}

func TestConnectFailureDegrades(t *testing.T) {
	sim := clientlib.NewSim()
	sim.ConnectFailure = clientlib.CodeConnectionFailed

	bus := eventbus.New(eventbus.WithLogger(quietLogger()))
	defer bus.Shutdown()
	sub := eventbus.SubscribeTo(bus, eventbus.ConnectionStatus)
	defer sub.Close()

	m := New(Options{Lib: sim, Logger: quietLogger(), Bus: bus, Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start should not be fatal on connect failure: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateDegraded)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case env := <-sub.C():
			if env.Payload.State == eventbus.ConnectionDegraded {
				if env.Payload.ErrorCode != clientlib.CodeConnectionFailed {
					t.Errorf("ErrorCode = %#04x", env.Payload.ErrorCode)
				}
				return
			}
		case <-deadline:
			t.Fatal("no degraded status event")
		}
	}
}

func TestMidSessionDisconnectDegrades(t *testing.T) {
	sim := clientlib.NewSim()
	m := New(Options{Lib: sim, Logger: quietLogger(), Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateConnected)

	sim.EmitStatus(1, clientlib.StatusDisconnected, clientlib.CodeConnectionFailed)
	waitForState(t, m, StateDegraded)
}

func TestIdentityFailureIsFatalAndReleasesSlot(t *testing.T) {
	sim := clientlib.NewSim()
	sim.IdentityErr = io.ErrUnexpectedEOF

	m := New(Options{Lib: sim, Logger: quietLogger(), Params: testParams(t)})
	if err := m.Start(); err == nil {
		t.Fatal("Start should fail when identity cannot be created")
	}

	// The slot must be free again for the next attempt.
	if err := clientlib.Acquire(); err != nil {
		t.Fatalf("slot not released: %v", err)
	}
	clientlib.Release()
}

func TestSecondManagerIsRejected(t *testing.T) {
	sim := clientlib.NewSim()
	m := New(Options{Lib: sim, Logger: quietLogger(), Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	second := New(Options{Lib: clientlib.NewSim(), Logger: quietLogger(), Params: testParams(t)})
	if err := second.Start(); err == nil {
		t.Fatal("second manager must be rejected while the first is active")
	}
}

func TestExplicitIdentitySkipsFile(t *testing.T) {
	sim := clientlib.NewSim()
	params := testParams(t)
	params.Identity = "preset-identity"

	m := New(Options{Lib: sim, Logger: quietLogger(), Params: params})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateConnected)

	got, ok := sim.LastParams(1)
	if !ok {
		t.Fatal("no connect params recorded")
	}
	if got.Identity != "preset-identity" {
		t.Errorf("Identity = %q, want preset", got.Identity)
	}
	for _, call := range sim.Calls() {
		if call == "CreateIdentity" {
			t.Error("CreateIdentity called despite explicit identity")
		}
	}
}

func TestShutdownUnwindsEveryStep(t *testing.T) {
	sim := clientlib.NewSim()
	m := New(Options{Lib: sim, Logger: quietLogger(), Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitForState(t, m, StateConnected)

	m.Shutdown()
	if got := m.State(); got != StateTerminated {
		t.Errorf("state = %q, want terminated", got)
	}

	want := map[string]bool{
		"StopConnection":             false,
		"CloseCaptureDevice":         false,
		"ClosePlaybackDevice":        false,
		"DestroyConnectionHandler:1": false,
		"Destroy":                    false,
	}
	for _, call := range sim.Calls() {
		if _, ok := want[call]; ok {
			want[call] = true
		}
	}
	for step, seen := range want {
		if !seen {
			t.Errorf("teardown step %s not executed", step)
		}
	}

	// Shutdown is idempotent.
	m.Shutdown()
}

func TestChatMessagePublishedOnBus(t *testing.T) {
	sim := clientlib.NewSim()
	bus := eventbus.New(eventbus.WithLogger(quietLogger()))
	defer bus.Shutdown()
	sub := eventbus.SubscribeTo(bus, eventbus.ChatMessage)
	defer sub.Close()

	m := New(Options{Lib: sim, Logger: quietLogger(), Bus: bus, Params: testParams(t)})
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Shutdown()

	waitForState(t, m, StateConnected)
	sim.EmitText(1, 2, "alice", "uid-a", "hello bridge")

	select {
	case env := <-sub.C():
		if env.Payload.InvokerName != "alice" || env.Payload.Message != "hello bridge" {
			t.Errorf("event = %+v", env.Payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("chat message not published")
	}
}
