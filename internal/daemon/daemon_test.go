package daemon

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/voicebridge/voicebridge/internal/api/grpc/v1"
	"github.com/voicebridge/voicebridge/internal/clientlib"
	"github.com/voicebridge/voicebridge/internal/config"
	"github.com/voicebridge/voicebridge/internal/connection"
	"github.com/voicebridge/voicebridge/internal/eventbus"
	"github.com/voicebridge/voicebridge/internal/roster"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	home := t.TempDir()
	return config.Config{
		GRPCAddr:     "127.0.0.1:0",
		HTTPAddr:     "127.0.0.1:0",
		Host:         "127.0.0.1",
		Port:         9987,
		Nickname:     "bridge-test",
		IdentityFile: filepath.Join(home, "identity.txt"),
		LogDir:       filepath.Join(home, "logs"),
		ResourceDir:  filepath.Join(home, "sdk"),
		DBPath:       filepath.Join(home, "voicebridge.db"),
		RosterPeriod: 10 * time.Millisecond,
	}
}

func startDaemon(t *testing.T, opts Options) *Daemon {
	t.Helper()
	d := New(opts)
	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { d.Shutdown() })
	return d
}

func dialVoice(t *testing.T, d *Daemon) v1.VoiceServiceClient {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///"+d.ServerInfo().GRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return v1.NewVoiceServiceClient(conn)
}

func waitForState(t *testing.T, d *Daemon, want connection.State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if d.ConnectionState() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("connection state = %q, want %q", d.ConnectionState(), want)
}

func TestStartServesPingAndShutsDown(t *testing.T) {
	d := startDaemon(t, Options{Config: testConfig(t), Logger: quietLogger()})
	client := dialVoice(t, d)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Ping(ctx, &v1.PingRequest{})
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if resp.GetVersion() == "" {
		t.Error("Ping returned empty version")
	}

	waitForState(t, d, connection.StateConnected)

	if err := d.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := d.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
}

func TestDegradedLibraryStillServesRPCs(t *testing.T) {
	sim := clientlib.NewSim()
	sim.InitErr = errors.New("no audio backend")

	d := startDaemon(t, Options{Config: testConfig(t), Logger: quietLogger(), Lib: sim})
	waitForState(t, d, connection.StateDegraded)

	client := dialVoice(t, d)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx, &v1.PingRequest{}); err != nil {
		t.Fatalf("Ping while degraded: %v", err)
	}
	res, err := client.Play(ctx, &v1.PlayRequest{Title: "Song A", SourceUrl: "src"})
	if err != nil {
		t.Fatalf("Play while degraded: %v", err)
	}
	if !res.GetOk() {
		t.Errorf("Play not ok: %s", res.GetMessage())
	}
}

func TestIdentityFailureIsFatal(t *testing.T) {
	sim := clientlib.NewSim()
	sim.IdentityErr = errors.New("keypair generation failed")

	d := New(Options{Config: testConfig(t), Logger: quietLogger(), Lib: sim})
	if err := d.Start(); err == nil {
		d.Shutdown()
		t.Fatal("Start succeeded despite identity failure")
	}
}

func TestVolumePersistsAcrossRestart(t *testing.T) {
	cfg := testConfig(t)

	d := startDaemon(t, Options{Config: cfg, Logger: quietLogger()})
	client := dialVoice(t, d)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.SetVolume(ctx, &v1.SetVolumeRequest{VolumePercent: 150}); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	if err := d.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	d2 := startDaemon(t, Options{Config: cfg, Logger: quietLogger()})
	client2 := dialVoice(t, d2)
	st, err := client2.GetStatus(ctx, &v1.StatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.GetVolumePercent() != 150 {
		t.Errorf("volume = %d, want persisted 150", st.GetVolumePercent())
	}
}

type fakeQuerySession struct {
	occupants []roster.Occupant
}

func (f *fakeQuerySession) Occupants() ([]roster.Occupant, error) { return f.occupants, nil }
func (f *fakeQuerySession) Close() error                          { return nil }

func TestRosterMonitorPublishesWhenConfigured(t *testing.T) {
	cfg := testConfig(t)
	cfg.QueryUser = "serveradmin"
	cfg.QueryPassword = "secret"

	session := &fakeQuerySession{occupants: []roster.Occupant{
		{ID: 1, ChannelID: 5, Nickname: "alice"},
	}}

	d := New(Options{
		Config:     cfg,
		Logger:     quietLogger(),
		RosterDial: func() (roster.Session, error) { return session, nil },
	})
	sub := eventbus.SubscribeTo(d.Bus(), eventbus.RosterChanged)
	defer sub.Close()

	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Shutdown()

	select {
	case env := <-sub.C():
		if len(env.Payload.Clients) != 1 || env.Payload.Clients[0].Nickname != "alice" {
			t.Errorf("roster = %+v", env.Payload.Clients)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no roster event")
	}
}

func TestRosterMonitorAbsentWithoutQueryUser(t *testing.T) {
	d := New(Options{Config: testConfig(t), Logger: quietLogger()})
	if d.monitor != nil {
		t.Error("roster monitor built without ServerQuery credentials")
	}
}

func TestShutdownDuringStartSkipsRosterMonitor(t *testing.T) {
	cfg := testConfig(t)
	cfg.QueryUser = "serveradmin"
	cfg.QueryPassword = "secret"

	dialed := make(chan struct{}, 1)
	d := New(Options{
		Config: cfg,
		Logger: quietLogger(),
		RosterDial: func() (roster.Session, error) {
			dialed <- struct{}{}
			return &fakeQuerySession{}, nil
		},
	})

	// A termination signal can land while Start is still underway. Once
	// Shutdown has run, Start must not launch the roster monitor.
	if err := d.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = d.srv.Shutdown(ctx)
		// The connection manager is already Terminated, so its own Shutdown
		// will not run again; release the library slot for the next test.
		clientlib.Release()
	})

	d.mu.Lock()
	launched := d.rosterDone != nil
	d.mu.Unlock()
	if launched {
		t.Error("roster monitor launched after Shutdown")
	}
	select {
	case <-dialed:
		t.Error("roster monitor dialed after Shutdown")
	case <-time.After(50 * time.Millisecond):
	}
}
