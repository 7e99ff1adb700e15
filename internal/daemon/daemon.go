// Package daemon wires the bridge together: settings store, event bus,
// playback machine, voice connection, optional roster monitor and the
// control-plane server, with an ordered startup and teardown.
package daemon

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/voicebridge/voicebridge/internal/clientlib"
	"github.com/voicebridge/voicebridge/internal/config"
	"github.com/voicebridge/voicebridge/internal/config/store"
	"github.com/voicebridge/voicebridge/internal/connection"
	"github.com/voicebridge/voicebridge/internal/eventbus"
	"github.com/voicebridge/voicebridge/internal/playback"
	"github.com/voicebridge/voicebridge/internal/roster"
	"github.com/voicebridge/voicebridge/internal/server"
)

const shutdownTimeout = 10 * time.Second

// Options configure a Daemon.
type Options struct {
	Config config.Config
	Logger *log.Logger

	// Lib is the voice client library binding. Defaults to the simulator
	// until a native binding is linked in.
	Lib clientlib.Library

	// RosterDial overrides the ServerQuery dialer, for tests.
	RosterDial roster.DialFunc
}

// Daemon owns every long-lived component of the bridge process.
type Daemon struct {
	cfg    config.Config
	logger *log.Logger

	bus      *eventbus.Bus
	settings *store.Store
	machine  *playback.Machine
	conn     *connection.Manager
	srv      *server.Server
	monitor  *roster.Monitor

	mu           sync.Mutex
	started      bool
	stopped      bool
	srvInfo      server.Info
	serveCancel  context.CancelFunc
	rosterCancel context.CancelFunc
	rosterDone   chan struct{}
}

// New builds the daemon's component graph without starting anything. A
// settings store that fails to open is logged and skipped: the bridge runs
// with defaults and settings simply do not persist.
func New(opts Options) *Daemon {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	lib := opts.Lib
	if lib == nil {
		lib = clientlib.NewSim()
	}

	var settings *store.Store
	if opts.Config.DBPath != "" {
		st, err := store.Open(store.Options{Path: opts.Config.DBPath})
		if err != nil {
			logger.Printf("[daemon] settings store: %v (settings will not persist)", err)
		} else {
			settings = st
		}
	}

	bus := eventbus.New(eventbus.WithLogger(logger))
	machine := playback.New(playback.Options{
		Logger: logger,
		Bus:    bus,
		Store:  settings,
	})
	conn := connection.New(connection.Options{
		Lib:    lib,
		Logger: logger,
		Bus:    bus,
		Params: connection.Params{
			Host:            opts.Config.Host,
			Port:            opts.Config.Port,
			Nickname:        opts.Config.Nickname,
			Identity:        opts.Config.Identity,
			IdentityFile:    opts.Config.IdentityFile,
			ServerPassword:  opts.Config.ServerPassword,
			ChannelPassword: opts.Config.ChannelPassword,
			ChannelID:       opts.Config.ChannelID,
			ChannelPath:     opts.Config.ChannelPath,
			LogDir:          opts.Config.LogDir,
			ResourceDir:     opts.Config.ResourceDir,
		},
	})
	srv := server.New(server.Options{
		GRPCAddr: opts.Config.GRPCAddr,
		HTTPAddr: opts.Config.HTTPAddr,
		Logger:   logger,
		Bus:      bus,
		Playback: machine,
	})

	d := &Daemon{
		cfg:      opts.Config,
		logger:   logger,
		bus:      bus,
		settings: settings,
		machine:  machine,
		conn:     conn,
		srv:      srv,
	}

	if opts.Config.RosterEnabled() {
		d.monitor = roster.New(roster.Options{
			Logger:    logger,
			Bus:       bus,
			Addr:      opts.Config.QueryAddr(),
			User:      opts.Config.QueryUser,
			Password:  opts.Config.QueryPassword,
			ServerID:  opts.Config.QueryServerID,
			ChannelID: int(opts.Config.ChannelID),
			Period:    opts.Config.RosterPeriod,
			Dial:      opts.RosterDial,
		})
	}

	return d
}

// Start brings the daemon up: control plane first so the bridge is reachable
// even when the voice side degrades, then the voice connection, then the
// roster monitor. It returns an error only for the fatal cases; a degraded
// voice connection leaves the control plane serving.
func (d *Daemon) Start() error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return fmt.Errorf("daemon: already started")
	}
	d.started = true
	d.mu.Unlock()

	serveCtx, serveCancel := context.WithCancel(context.Background())
	d.mu.Lock()
	d.serveCancel = serveCancel
	d.mu.Unlock()

	info, err := d.srv.Start(serveCtx)
	if err != nil {
		serveCancel()
		return fmt.Errorf("daemon: %w", err)
	}
	d.mu.Lock()
	d.srvInfo = *info
	d.mu.Unlock()
	go d.watchServeErrors()

	if err := d.conn.Start(); err != nil {
		d.logger.Printf("[daemon] connection startup failed: %v", err)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		serveCancel()
		_ = d.srv.Shutdown(shutdownCtx)
		return fmt.Errorf("daemon: %w", err)
	}

	if d.monitor != nil {
		rosterCtx, rosterCancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		d.mu.Lock()
		// A signal can land while Start is still underway; once Shutdown has
		// run, launching the monitor would leak it.
		if d.stopped {
			d.mu.Unlock()
			rosterCancel()
			return nil
		}
		d.rosterCancel = rosterCancel
		d.rosterDone = done
		d.mu.Unlock()
		go func() {
			defer close(done)
			d.monitor.Run(rosterCtx)
		}()
		d.logger.Printf("[daemon] roster monitor polling %s every %s", d.cfg.QueryAddr(), d.cfg.RosterPeriod)
	}

	return nil
}

// watchServeErrors drains the server's fatal serve errors. Losing a listener
// mid-flight degrades the control plane; the process stays up so the voice
// connection is not torn down with it.
func (d *Daemon) watchServeErrors() {
	for err := range d.srv.Err() {
		d.logger.Printf("[daemon] serve error: %v", err)
	}
}

// Shutdown tears the daemon down in reverse dependency order: control plane,
// roster monitor, voice connection, event bus, settings store. Idempotent;
// each step runs regardless of earlier failures.
func (d *Daemon) Shutdown() error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	serveCancel := d.serveCancel
	rosterCancel := d.rosterCancel
	rosterDone := d.rosterDone
	d.mu.Unlock()

	if serveCancel != nil {
		serveCancel()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := d.srv.Shutdown(shutdownCtx); err != nil {
		d.logger.Printf("[daemon] server shutdown: %v", err)
	}

	if rosterCancel != nil {
		rosterCancel()
		select {
		case <-rosterDone:
		case <-time.After(shutdownTimeout):
			d.logger.Printf("[daemon] roster monitor did not stop in time")
		}
	}

	d.conn.Shutdown()
	d.bus.Shutdown()

	if d.settings != nil {
		if err := d.settings.Close(); err != nil {
			d.logger.Printf("[daemon] close settings store: %v", err)
		}
	}
	return nil
}

// ServerInfo returns the bound control-plane addresses. Valid after Start.
func (d *Daemon) ServerInfo() server.Info {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.srvInfo
}

// ConnectionState reports the voice connection lifecycle state.
func (d *Daemon) ConnectionState() connection.State {
	return d.conn.State()
}

// Bus exposes the event bus, for components hosted outside the daemon.
func (d *Daemon) Bus() *eventbus.Bus {
	return d.bus
}
