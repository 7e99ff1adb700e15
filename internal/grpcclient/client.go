// Package grpcclient is the thin client the CLI uses to talk to the daemon's
// control plane.
package grpcclient

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/voicebridge/voicebridge/internal/api/grpc/v1"
	"github.com/voicebridge/voicebridge/internal/config"
)

// passthroughPrefix bypasses gRPC DNS resolution, matching deprecated DialContext behaviour.
const passthroughPrefix = "passthrough:///"

const minConnectTimeout = 5 * time.Second

// Client wraps a VoiceService connection.
type Client struct {
	conn  *grpc.ClientConn
	voice v1.VoiceServiceClient
}

// New connects to the daemon. An empty address falls back to
// VOICEBRIDGE_GRPC_ADDR and then the built-in default.
func New(address string) (*Client, error) {
	addr := strings.TrimSpace(address)
	if addr == "" {
		addr = strings.TrimSpace(os.Getenv("VOICEBRIDGE_GRPC_ADDR"))
	}
	if addr == "" {
		addr = config.DefaultGRPCAddr
	}

	opts := []grpc.DialOption{
		grpc.WithConnectParams(grpc.ConnectParams{
			MinConnectTimeout: minConnectTimeout,
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	conn, err := grpc.NewClient(passthroughPrefix+addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpcclient: connect %s: %w", addr, err)
	}

	return &Client{
		conn:  conn,
		voice: v1.NewVoiceServiceClient(conn),
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping returns the daemon version.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.voice.Ping(ctx, &v1.PingRequest{})
	if err != nil {
		return "", err
	}
	return resp.GetVersion(), nil
}

// Play starts playback of the given track.
func (c *Client) Play(ctx context.Context, title, sourceURL string) (*v1.CommandResponse, error) {
	return c.voice.Play(ctx, &v1.PlayRequest{Title: title, SourceUrl: sourceURL})
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context) (*v1.CommandResponse, error) {
	return c.voice.Pause(ctx, &v1.PauseRequest{})
}

// Resume resumes paused playback.
func (c *Client) Resume(ctx context.Context) (*v1.CommandResponse, error) {
	return c.voice.Resume(ctx, &v1.ResumeRequest{})
}

// Stop stops playback.
func (c *Client) Stop(ctx context.Context) (*v1.CommandResponse, error) {
	return c.voice.Stop(ctx, &v1.StopRequest{})
}

// Skip clears the current track.
func (c *Client) Skip(ctx context.Context) (*v1.CommandResponse, error) {
	return c.voice.Skip(ctx, &v1.SkipRequest{})
}

// SetVolume sets the playback volume percentage.
func (c *Client) SetVolume(ctx context.Context, percent int32) (*v1.CommandResponse, error) {
	return c.voice.SetVolume(ctx, &v1.SetVolumeRequest{VolumePercent: percent})
}

// Status returns the playback status snapshot.
func (c *Client) Status(ctx context.Context) (*v1.StatusResponse, error) {
	return c.voice.GetStatus(ctx, &v1.StatusRequest{})
}

// SetAudioFx applies a partial effects update and returns the resulting set.
func (c *Client) SetAudioFx(ctx context.Context, req *v1.SetAudioFxRequest) (*v1.AudioFxResponse, error) {
	return c.voice.SetAudioFx(ctx, req)
}

// GetAudioFx returns the current effects set.
func (c *Client) GetAudioFx(ctx context.Context) (*v1.AudioFxResponse, error) {
	return c.voice.GetAudioFx(ctx, &v1.GetAudioFxRequest{})
}
