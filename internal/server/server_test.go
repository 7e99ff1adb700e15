package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	v1 "github.com/voicebridge/voicebridge/internal/api/grpc/v1"
	"github.com/voicebridge/voicebridge/internal/eventbus"
	"github.com/voicebridge/voicebridge/internal/playback"
)

func startTestServer(t *testing.T, bus *eventbus.Bus) (*Server, v1.VoiceServiceClient) {
	t.Helper()

	machine := playback.New(playback.Options{Logger: log.New(io.Discard, "", 0), Bus: bus})
	srv := New(Options{
		GRPCAddr: "127.0.0.1:0",
		HTTPAddr: "127.0.0.1:0",
		Logger:   log.New(io.Discard, "", 0),
		Bus:      bus,
		Playback: machine,
	})

	ctx, cancel := context.WithCancel(context.Background())
	info, err := srv.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		srv.Shutdown(shutdownCtx)
	})

	conn, err := grpc.NewClient("passthrough:///"+info.GRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return srv, v1.NewVoiceServiceClient(conn)
}

func TestPingReturnsVersionWithoutConnection(t *testing.T) {
	_, client := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Ping(ctx, &v1.PingRequest{})
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if resp.GetVersion() == "" {
		t.Error("Ping returned empty version")
	}
}

func TestPlayThenStatus(t *testing.T) {
	_, client := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := client.Play(ctx, &v1.PlayRequest{Title: "Song A", SourceUrl: "https://example.com/a"})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.GetOk() {
		t.Errorf("Play not ok: %s", res.GetMessage())
	}

	st, err := client.GetStatus(ctx, &v1.StatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.GetState() != "playing" {
		t.Errorf("state = %q, want playing", st.GetState())
	}
	if st.GetNowPlayingTitle() != "Song A" || st.GetNowPlayingSourceUrl() != "https://example.com/a" {
		t.Errorf("now playing = %q / %q", st.GetNowPlayingTitle(), st.GetNowPlayingSourceUrl())
	}
	if st.GetVolumePercent() != 100 {
		t.Errorf("volume = %d, want 100", st.GetVolumePercent())
	}
}

func TestPlayPauseKeepsNowPlaying(t *testing.T) {
	_, client := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Play(ctx, &v1.PlayRequest{Title: "Song A", SourceUrl: "src"}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if _, err := client.Pause(ctx, &v1.PauseRequest{}); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	st, err := client.GetStatus(ctx, &v1.StatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.GetState() != "paused" {
		t.Errorf("state = %q, want paused", st.GetState())
	}
	if st.GetNowPlayingTitle() != "Song A" {
		t.Errorf("title = %q, want unchanged", st.GetNowPlayingTitle())
	}
}

func TestSetVolumeClampsOverWire(t *testing.T) {
	_, client := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.SetVolume(ctx, &v1.SetVolumeRequest{VolumePercent: 500}); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	st, err := client.GetStatus(ctx, &v1.StatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.GetVolumePercent() != 200 {
		t.Errorf("volume = %d, want clamped 200", st.GetVolumePercent())
	}
}

func TestSubscribeEventsIsExplicitlyUnimplemented(t *testing.T) {
	_, client := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SubscribeEvents(ctx, &v1.SubscribeRequest{})
	if err != nil {
		t.Fatalf("SubscribeEvents: %v", err)
	}
	_, err = stream.Recv()
	if err == nil {
		t.Fatal("expected error from SubscribeEvents stream")
	}
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", status.Code(err))
	}
}

func TestSetAudioFxPartialUpdateOverWire(t *testing.T) {
	_, client := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.SetAudioFx(ctx, &v1.SetAudioFxRequest{
		SetPan: true,
		Pan:    5, // clamped to 1
	})
	if err != nil {
		t.Fatalf("SetAudioFx: %v", err)
	}
	if resp.GetPan() != 1 {
		t.Errorf("pan = %v, want clamped 1", resp.GetPan())
	}

	resp, err = client.SetAudioFx(ctx, &v1.SetAudioFxRequest{
		SetBassDb: true,
		BassDb:    6,
	})
	if err != nil {
		t.Fatalf("SetAudioFx: %v", err)
	}
	if resp.GetPan() != 1 {
		t.Errorf("pan = %v, partial update must keep it", resp.GetPan())
	}
	if resp.GetBassDb() != 6 {
		t.Errorf("bass = %v, want 6", resp.GetBassDb())
	}

	got, err := client.GetAudioFx(ctx, &v1.GetAudioFxRequest{})
	if err != nil {
		t.Fatalf("GetAudioFx: %v", err)
	}
	if got.GetPan() != 1 || got.GetBassDb() != 6 {
		t.Errorf("fx = %+v", got)
	}
}

func TestHealthzServed(t *testing.T) {
	srv, _ := startTestServer(t, nil)

	resp, err := http.Get("http://" + srv.Info().HTTPAddr + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "ok") {
		t.Errorf("body = %q", body)
	}
}
