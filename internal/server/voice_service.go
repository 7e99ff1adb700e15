// Package server exposes the control plane: the gRPC VoiceService the
// orchestrator drives, plus an HTTP listener carrying the WebSocket event
// feed and the health endpoint.
package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/voicebridge/voicebridge/internal/api/grpc/v1"
	"github.com/voicebridge/voicebridge/internal/playback"
	"github.com/voicebridge/voicebridge/internal/version"
)

// voiceService implements voicebridge.voice.v1.VoiceService on top of the
// playback machine. Handlers are fast in-memory mutations; none of them
// touches the native connection, so Ping and GetStatus stay usable while the
// connection is degraded.
type voiceService struct {
	v1.UnimplementedVoiceServiceServer

	machine *playback.Machine
}

func newVoiceService(machine *playback.Machine) *voiceService {
	return &voiceService{machine: machine}
}

func (s *voiceService) Ping(ctx context.Context, _ *v1.PingRequest) (*v1.PingResponse, error) {
	return &v1.PingResponse{Version: version.String()}, nil
}

func (s *voiceService) Play(ctx context.Context, req *v1.PlayRequest) (*v1.CommandResponse, error) {
	res := s.machine.Play(req.GetTitle(), req.GetSourceUrl())
	return commandResponse(res), nil
}

func (s *voiceService) Pause(ctx context.Context, _ *v1.PauseRequest) (*v1.CommandResponse, error) {
	return commandResponse(s.machine.Pause()), nil
}

func (s *voiceService) Resume(ctx context.Context, _ *v1.ResumeRequest) (*v1.CommandResponse, error) {
	return commandResponse(s.machine.Resume()), nil
}

func (s *voiceService) Stop(ctx context.Context, _ *v1.StopRequest) (*v1.CommandResponse, error) {
	return commandResponse(s.machine.Stop()), nil
}

func (s *voiceService) Skip(ctx context.Context, _ *v1.SkipRequest) (*v1.CommandResponse, error) {
	return commandResponse(s.machine.Skip()), nil
}

func (s *voiceService) SetVolume(ctx context.Context, req *v1.SetVolumeRequest) (*v1.CommandResponse, error) {
	return commandResponse(s.machine.SetVolume(int(req.GetVolumePercent()))), nil
}

func (s *voiceService) GetStatus(ctx context.Context, _ *v1.StatusRequest) (*v1.StatusResponse, error) {
	st := s.machine.Status()
	return &v1.StatusResponse{
		State:               string(st.State),
		NowPlayingTitle:     st.Title,
		NowPlayingSourceUrl: st.SourceURL,
		VolumePercent:       int32(st.VolumePercent),
	}, nil
}

func (s *voiceService) SetAudioFx(ctx context.Context, req *v1.SetAudioFxRequest) (*v1.AudioFxResponse, error) {
	var update playback.FxUpdate
	if req.GetSetPan() {
		v := req.GetPan()
		update.Pan = &v
	}
	if req.GetSetWidth() {
		v := req.GetWidth()
		update.Width = &v
	}
	if req.GetSetSwapLr() {
		v := req.GetSwapLr()
		update.SwapLR = &v
	}
	if req.GetSetBassDb() {
		v := req.GetBassDb()
		update.BassDB = &v
	}
	if req.GetSetReverbMix() {
		v := req.GetReverbMix()
		update.ReverbMix = &v
	}
	fx := s.machine.SetFx(update)
	return &v1.AudioFxResponse{
		Pan:       fx.Pan,
		Width:     fx.Width,
		SwapLr:    fx.SwapLR,
		BassDb:    fx.BassDB,
		ReverbMix: fx.ReverbMix,
	}, nil
}

func (s *voiceService) GetAudioFx(ctx context.Context, _ *v1.GetAudioFxRequest) (*v1.AudioFxResponse, error) {
	fx := s.machine.Fx()
	return &v1.AudioFxResponse{
		Pan:       fx.Pan,
		Width:     fx.Width,
		SwapLr:    fx.SwapLR,
		BassDb:    fx.BassDB,
		ReverbMix: fx.ReverbMix,
	}, nil
}

// SubscribeEvents is declared in the API but not served over gRPC. Callers
// get an explicit Unimplemented so "not supported" is distinguishable from a
// transient stream failure; the WebSocket /events endpoint carries the feed.
func (s *voiceService) SubscribeEvents(_ *v1.SubscribeRequest, _ v1.VoiceService_SubscribeEventsServer) error {
	return status.Error(codes.Unimplemented, "SubscribeEvents is not implemented; use the /events websocket feed")
}

func commandResponse(res playback.Result) *v1.CommandResponse {
	return &v1.CommandResponse{Ok: res.OK, Message: res.Message}
}
