package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	v1 "github.com/voicebridge/voicebridge/internal/api/grpc/v1"
	"github.com/voicebridge/voicebridge/internal/eventbus"
	"github.com/voicebridge/voicebridge/internal/playback"
)

const shutdownGrace = 5 * time.Second

// Options configure the control-plane server.
type Options struct {
	// GRPCAddr and HTTPAddr are listen addresses; a port of 0 picks a free
	// port, reported through Info.
	GRPCAddr string
	HTTPAddr string

	Logger   *log.Logger
	Bus      *eventbus.Bus
	Playback *playback.Machine
}

// Info reports the addresses the listeners actually bound to.
type Info struct {
	GRPCAddr string
	HTTPAddr string
}

// Server hosts the gRPC control plane and the HTTP event feed.
type Server struct {
	opts   Options
	logger *log.Logger

	mu           sync.Mutex
	grpcServer   *grpc.Server
	grpcListener net.Listener
	httpServer   *http.Server
	httpListener net.Listener
	hub          *eventHub
	errCh        chan error
	wg           sync.WaitGroup
	info         Info
}

// New constructs a Server. Start must be called before the listeners exist.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{opts: opts, logger: logger}
}

// Start binds both listeners and begins serving. It must not be called
// concurrently with Shutdown.
func (s *Server) Start(ctx context.Context) (*Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grpcListener != nil || s.httpListener != nil {
		return nil, fmt.Errorf("server: already started")
	}

	grpcListener, err := net.Listen("tcp", s.opts.GRPCAddr)
	if err != nil {
		return nil, fmt.Errorf("server: listen grpc: %w", err)
	}
	httpListener, err := net.Listen("tcp", s.opts.HTTPAddr)
	if err != nil {
		_ = grpcListener.Close()
		return nil, fmt.Errorf("server: listen http: %w", err)
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	v1.RegisterVoiceServiceServer(grpcServer, newVoiceService(s.opts.Playback))

	hub := newEventHub(s.opts.Bus, s.logger)
	mux := http.NewServeMux()
	mux.Handle("/events", hub)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	httpServer := &http.Server{Handler: mux}

	s.grpcServer = grpcServer
	s.grpcListener = grpcListener
	s.httpServer = httpServer
	s.httpListener = httpListener
	s.hub = hub
	s.errCh = make(chan error, 2)
	s.info = Info{
		GRPCAddr: grpcListener.Addr().String(),
		HTTPAddr: httpListener.Addr().String(),
	}
	errCh := s.errCh

	s.wg.Add(2)
	go s.serveGRPC(ctx, grpcServer, grpcListener)
	go s.serveHTTP(ctx, httpServer, httpListener)

	go func(ch chan error) {
		s.wg.Wait()
		close(ch)
	}(errCh)

	s.logger.Printf("[server] grpc listening on %s, http on %s", s.info.GRPCAddr, s.info.HTTPAddr)
	infoCopy := s.info
	return &infoCopy, nil
}

func (s *Server) serveGRPC(ctx context.Context, grpcServer *grpc.Server, listener net.Listener) {
	defer s.wg.Done()

	go func() {
		<-ctx.Done()
		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			grpcServer.Stop()
		}
	}()

	if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, grpc.ErrServerStopped) && status.Code(err) != codes.Canceled {
		s.pushError(err)
	}
}

func (s *Server) serveHTTP(ctx context.Context, httpServer *http.Server, listener net.Listener) {
	defer s.wg.Done()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
			s.pushError(err)
		}
	}()

	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		s.pushError(err)
	}
}

func (s *Server) pushError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	ch := s.errCh
	s.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}

// Err returns the channel carrying fatal serve errors. The channel is closed
// once both serve loops have exited.
func (s *Server) Err() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errCh
}

// Info returns the bound addresses. Valid after Start.
func (s *Server) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Shutdown stops both listeners and waits for the serve goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	grpcServer := s.grpcServer
	grpcListener := s.grpcListener
	httpServer := s.httpServer
	httpListener := s.httpListener
	hub := s.hub
	s.grpcServer = nil
	s.grpcListener = nil
	s.httpServer = nil
	s.httpListener = nil
	s.hub = nil
	s.errCh = nil
	s.mu.Unlock()

	if grpcServer == nil && httpServer == nil {
		return nil
	}

	if hub != nil {
		hub.Close()
	}

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGrace)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("[server] http shutdown: %v", err)
		}
	}
	if httpListener != nil {
		_ = httpListener.Close()
	}

	if grpcServer != nil {
		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			grpcServer.Stop()
		}
	}
	if grpcListener != nil {
		_ = grpcListener.Close()
	}

	s.wg.Wait()
	return nil
}
