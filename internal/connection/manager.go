// Package connection owns the single voice-server connection: library
// lifecycle, identity, the connection handler, device opens, and the status
// callbacks the client library delivers on its own thread.
package connection

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/voicebridge/voicebridge/internal/clientlib"
	"github.com/voicebridge/voicebridge/internal/devices"
	"github.com/voicebridge/voicebridge/internal/eventbus"
	"github.com/voicebridge/voicebridge/internal/identity"
)

// State is the manager's lifecycle state.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitialized   State = "initialized"
	StateConnecting    State = "connecting"
	StateConnected     State = "connected"
	StateDegraded      State = "degraded"
	StateTerminated    State = "terminated"
)

// Params carries everything needed to bring the connection up.
type Params struct {
	Host     string
	Port     int
	Nickname string

	// Identity is used verbatim when set; otherwise IdentityFile is loaded
	// or created through the library.
	Identity     string
	IdentityFile string

	ServerPassword  string
	ChannelPassword string

	// ChannelID, when non-zero, is joined with a one-shot move after the
	// connection is established. ChannelPath is passed to the library as
	// the default channel for the initial join.
	ChannelID   uint64
	ChannelPath []string

	LogDir      string
	ResourceDir string
}

// Options configures a Manager.
type Options struct {
	Lib    clientlib.Library
	Logger *log.Logger
	Bus    *eventbus.Bus
	Params Params
}

// Manager drives the connection lifecycle. Exactly one Manager may be active
// per process; Start enforces this through the library's instance guard.
//
// Failure policy: a second active instance and identity-creation failure are
// fatal. Everything later — library init, device opens, the connect call, a
// mid-session disconnect — degrades the manager while the process keeps
// serving RPCs. There is no in-process reconnect; restarting the daemon is
// the recovery path.
type Manager struct {
	lib    clientlib.Library
	logger *log.Logger
	bus    *eventbus.Bus
	params Params
	opener *devices.Opener

	mu           sync.Mutex
	state        State
	handlerID    uint64
	libInit      bool
	acquired     bool
	playbackOpen bool
	captureOpen  bool
	joined       bool
}

// New builds a Manager in the Uninitialized state.
func New(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		lib:    opts.Lib,
		logger: logger,
		bus:    opts.Bus,
		params: opts.Params,
		opener: devices.NewOpener(opts.Lib, logger),
		state:  StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start claims the process-wide library slot and walks the connect sequence:
// library init, identity, handler spawn, device opens, StartConnection. It
// returns an error only for the fatal cases; degraded outcomes return nil
// with the state set to Degraded.
func (m *Manager) Start() error {
	if err := clientlib.Acquire(); err != nil {
		return fmt.Errorf("connection: %w", err)
	}
	m.mu.Lock()
	m.acquired = true
	m.mu.Unlock()

	cb := clientlib.Callbacks{
		OnConnectStatusChange: m.onConnectStatusChange,
		OnTextMessage:         m.onTextMessage,
		OnServerError:         m.onServerError,
	}
	if err := m.lib.Init(cb, m.params.LogDir, m.params.ResourceDir); err != nil {
		m.degrade(0, fmt.Sprintf("library init: %v", err))
		return nil
	}
	m.mu.Lock()
	m.libInit = true
	m.state = StateInitialized
	m.mu.Unlock()

	id := m.params.Identity
	if id == "" {
		loaded, err := identity.LoadOrCreate(m.params.IdentityFile, m.lib, m.logger)
		if err != nil {
			m.teardown()
			return fmt.Errorf("connection: %w", err)
		}
		id = loaded
	}

	handlerID, err := m.lib.SpawnConnectionHandler()
	if err != nil {
		m.degrade(0, fmt.Sprintf("spawn connection handler: %v", err))
		return nil
	}
	m.mu.Lock()
	m.handlerID = handlerID
	m.mu.Unlock()

	// Device opens are best effort: a voice connection without local audio
	// is still worth having for the control plane.
	if opened, err := m.opener.OpenPlayback(handlerID); err != nil {
		m.logger.Printf("[connection] playback device: %v", err)
	} else {
		m.mu.Lock()
		m.playbackOpen = true
		m.mu.Unlock()
		m.logger.Printf("[connection] playback device %q open (mode %s)", opened.Device.Name, opened.Mode)
	}
	if opened, err := m.opener.OpenCapture(handlerID); err != nil {
		m.logger.Printf("[connection] capture device: %v", err)
	} else {
		m.mu.Lock()
		m.captureOpen = true
		m.mu.Unlock()
		m.logger.Printf("[connection] capture device %q open (mode %s)", opened.Device.Name, opened.Mode)
	}

	m.setState(StateConnecting)
	m.publishStatus(eventbus.ConnectionConnecting, 0, fmt.Sprintf("connecting to %s:%d", m.params.Host, m.params.Port))

	err = m.lib.StartConnection(handlerID, clientlib.ConnectParams{
		Identity:        id,
		Host:            m.params.Host,
		Port:            m.params.Port,
		Nickname:        m.params.Nickname,
		DefaultChannel:  m.params.ChannelPath,
		ChannelPassword: m.params.ChannelPassword,
		ServerPassword:  m.params.ServerPassword,
	})
	if err != nil {
		m.degrade(0, fmt.Sprintf("start connection: %v", err))
		return nil
	}
	return nil
}

// Shutdown unwinds the connection. Every teardown step runs regardless of
// prior step outcome; failures are logged and otherwise ignored.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	if m.state == StateTerminated {
		m.mu.Unlock()
		return
	}
	m.state = StateTerminated
	handlerID := m.handlerID
	libInit := m.libInit
	acquired := m.acquired
	playbackOpen := m.playbackOpen
	captureOpen := m.captureOpen
	m.mu.Unlock()

	if handlerID != 0 {
		if captureOpen {
			if err := m.lib.CloseCaptureDevice(handlerID); err != nil {
				m.logger.Printf("[connection] close capture device: %v", err)
			}
		}
		if playbackOpen {
			if err := m.lib.ClosePlaybackDevice(handlerID); err != nil {
				m.logger.Printf("[connection] close playback device: %v", err)
			}
		}
		if err := m.lib.StopConnection(handlerID, "shutting down"); err != nil {
			m.logger.Printf("[connection] stop connection: %v", err)
		}
		if err := m.lib.DestroyConnectionHandler(handlerID); err != nil {
			m.logger.Printf("[connection] destroy connection handler: %v", err)
		}
	}
	if libInit {
		if err := m.lib.Destroy(); err != nil {
			m.logger.Printf("[connection] destroy library: %v", err)
		}
	}
	if acquired {
		clientlib.Release()
	}

	m.publishStatus(eventbus.ConnectionTerminated, 0, "shutdown")
}

// teardown is the fatal-startup variant of Shutdown: no terminated event,
// since the process is about to exit with an error anyway.
func (m *Manager) teardown() {
	m.mu.Lock()
	libInit := m.libInit
	acquired := m.acquired
	m.libInit = false
	m.acquired = false
	m.mu.Unlock()

	if libInit {
		if err := m.lib.Destroy(); err != nil {
			m.logger.Printf("[connection] destroy library: %v", err)
		}
	}
	if acquired {
		clientlib.Release()
	}
}

func (m *Manager) onConnectStatusChange(handlerID uint64, status int, errorCode uint32) {
	m.mu.Lock()
	ours := handlerID == m.handlerID && m.handlerID != 0
	state := m.state
	m.mu.Unlock()
	if !ours || state == StateTerminated {
		return
	}

	switch status {
	case clientlib.StatusEstablished:
		m.setState(StateConnected)
		m.publishStatus(eventbus.ConnectionConnected, 0, "connection established")
		m.joinChannel(handlerID)
	case clientlib.StatusDisconnected:
		detail := "disconnected"
		if errorCode != 0 {
			detail = fmt.Sprintf("disconnected: %s", m.lib.ErrorMessage(errorCode))
			m.logger.Printf("[connection] disconnected with error %#04x: %s", errorCode, m.lib.ErrorMessage(errorCode))
		}
		m.setState(StateDegraded)
		m.publishStatus(eventbus.ConnectionDegraded, errorCode, detail)
	}
}

// joinChannel performs the one-shot move into the configured channel. Runs
// at most once per process; a failed move leaves the connection up.
func (m *Manager) joinChannel(handlerID uint64) {
	m.mu.Lock()
	channelID := m.params.ChannelID
	already := m.joined
	m.joined = true
	m.mu.Unlock()
	if channelID == 0 || already {
		return
	}

	clientID, err := m.lib.ClientID(handlerID)
	if err != nil {
		m.logger.Printf("[connection] channel join: client id: %v", err)
		return
	}
	if err := m.lib.MoveClient(handlerID, clientID, channelID, m.params.ChannelPassword); err != nil {
		m.logger.Printf("[connection] channel join: move to %d: %v", channelID, err)
		return
	}
	m.logger.Printf("[connection] joined channel %d", channelID)
}

func (m *Manager) onTextMessage(handlerID uint64, targetMode int, fromName, fromUID, message string) {
	m.mu.Lock()
	ours := handlerID == m.handlerID && m.handlerID != 0
	m.mu.Unlock()
	if !ours {
		return
	}
	eventbus.Publish(context.Background(), m.bus, eventbus.ChatMessage, eventbus.SourceConnection, eventbus.ChatMessageEvent{
		TargetMode:  targetMode,
		InvokerName: fromName,
		InvokerUID:  fromUID,
		Message:     message,
	})
}

func (m *Manager) onServerError(handlerID uint64, errorCode uint32, message, extra string) {
	m.logger.Printf("[connection] server error %#04x: %s %s", errorCode, message, extra)
	eventbus.Publish(context.Background(), m.bus, eventbus.BridgeLog, eventbus.SourceConnection, eventbus.BridgeLogEvent{
		Level:   eventbus.LevelWarn,
		Message: fmt.Sprintf("server error %#04x: %s", errorCode, message),
	})
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	if m.state != StateTerminated {
		m.state = s
	}
	m.mu.Unlock()
}

func (m *Manager) degrade(errorCode uint32, detail string) {
	m.logger.Printf("[connection] degraded: %s", detail)
	m.setState(StateDegraded)
	m.publishStatus(eventbus.ConnectionDegraded, errorCode, detail)
}

func (m *Manager) publishStatus(state eventbus.ConnectionState, errorCode uint32, detail string) {
	eventbus.Publish(context.Background(), m.bus, eventbus.ConnectionStatus, eventbus.SourceConnection, eventbus.ConnectionStatusEvent{
		State:     state,
		ErrorCode: errorCode,
		Detail:    detail,
	})
}
