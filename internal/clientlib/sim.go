package clientlib

import (
	"fmt"
	"sync"
)

// Sim is an in-memory Library used by tests and by the daemon's simulator
// mode. Behaviour is scripted through its exported fields, which must be set
// before the instance is handed to other goroutines.
type Sim struct {
	// InitErr, when set, is returned by Init.
	InitErr error
	// IdentityErr, when set, is returned by CreateIdentity.
	IdentityErr error
	// PlaybackMode and CaptureMode are the default audio backend names.
	PlaybackMode string
	CaptureMode  string
	// PlaybackDev and CaptureDev are the default devices.
	PlaybackDev Device
	CaptureDev  Device
	// PlaybackOpenFailures maps a device specifier to the error code
	// OpenPlaybackDevice fails with for that specifier. Specifiers absent
	// from the map open successfully. CaptureOpenFailures is the same for
	// capture devices.
	PlaybackOpenFailures map[string]uint32
	CaptureOpenFailures  map[string]uint32
	// ConnectFailure, when non-zero, makes StartConnection report the code
	// through a disconnect callback instead of establishing.
	ConnectFailure uint32
	// AutoEstablish makes StartConnection walk the full status sequence to
	// StatusEstablished on a background goroutine. When false the test
	// drives status transitions itself through EmitStatus.
	AutoEstablish bool
	// ClientIDValue is returned by ClientID once a connection is established.
	ClientIDValue uint16

	mu          sync.Mutex
	cb          Callbacks
	initialized bool
	destroyed   bool
	nextHandler uint64
	handlers    map[uint64]*simHandler
	calls       []string
	identitySeq int
	moves       []SimMove
	pending     sync.WaitGroup
}

type simHandler struct {
	playbackOpen bool
	captureOpen  bool
	established  bool
	lastParams   ConnectParams
}

// SimMove records one MoveClient invocation.
type SimMove struct {
	HandlerID uint64
	ClientID  uint16
	ChannelID uint64
	Password  string
}

// NewSim returns a simulator with sensible defaults: one playback and one
// capture device, automatic connection establishment, client ID 42.
func NewSim() *Sim {
	return &Sim{
		PlaybackMode:  "SimPlayback",
		CaptureMode:   "SimCapture",
		PlaybackDev:   Device{ID: "sim-out-0", Name: "Sim Output"},
		CaptureDev:    Device{ID: "sim-in-0", Name: "Sim Input"},
		AutoEstablish: true,
		ClientIDValue: 42,
		handlers:      make(map[uint64]*simHandler),
	}
}

func (s *Sim) record(call string) {
	s.calls = append(s.calls, call)
}

// Calls returns the ordered method invocation log.
func (s *Sim) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// Wait blocks until background callback goroutines spawned by the simulator
// have finished.
func (s *Sim) Wait() {
	s.pending.Wait()
}

func (s *Sim) Init(cb Callbacks, logDir, resourceDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Init")
	if s.InitErr != nil {
		return s.InitErr
	}
	if s.initialized {
		return fmt.Errorf("clientlib: sim already initialized")
	}
	s.cb = cb
	s.initialized = true
	s.destroyed = false
	return nil
}

func (s *Sim) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Destroy")
	if !s.initialized {
		return fmt.Errorf("clientlib: sim not initialized")
	}
	s.initialized = false
	s.destroyed = true
	return nil
}

func (s *Sim) CreateIdentity() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CreateIdentity")
	if s.IdentityErr != nil {
		return "", s.IdentityErr
	}
	s.identitySeq++
	return fmt.Sprintf("sim-identity-%d", s.identitySeq), nil
}

func (s *Sim) SpawnConnectionHandler() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("SpawnConnectionHandler")
	if !s.initialized {
		return 0, fmt.Errorf("clientlib: sim not initialized")
	}
	s.nextHandler++
	s.handlers[s.nextHandler] = &simHandler{}
	return s.nextHandler, nil
}

func (s *Sim) DestroyConnectionHandler(handlerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(fmt.Sprintf("DestroyConnectionHandler:%d", handlerID))
	if _, ok := s.handlers[handlerID]; !ok {
		return fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	delete(s.handlers, handlerID)
	return nil
}

func (s *Sim) DefaultPlaybackMode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DefaultPlaybackMode")
	return s.PlaybackMode, nil
}

func (s *Sim) DefaultCaptureMode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DefaultCaptureMode")
	return s.CaptureMode, nil
}

func (s *Sim) DefaultPlaybackDevice(mode string) (Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DefaultPlaybackDevice")
	return s.PlaybackDev, nil
}

func (s *Sim) DefaultCaptureDevice(mode string) (Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DefaultCaptureDevice")
	return s.CaptureDev, nil
}

func (s *Sim) OpenPlaybackDevice(handlerID uint64, mode, device string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(fmt.Sprintf("OpenPlaybackDevice:%q", device))
	h, ok := s.handlers[handlerID]
	if !ok {
		return fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	if code, fail := s.PlaybackOpenFailures[device]; fail {
		return &Error{Code: code, Message: MessageForCode(code)}
	}
	h.playbackOpen = true
	return nil
}

func (s *Sim) OpenCaptureDevice(handlerID uint64, mode, device string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(fmt.Sprintf("OpenCaptureDevice:%q", device))
	h, ok := s.handlers[handlerID]
	if !ok {
		return fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	if code, fail := s.CaptureOpenFailures[device]; fail {
		return &Error{Code: code, Message: MessageForCode(code)}
	}
	h.captureOpen = true
	return nil
}

func (s *Sim) ClosePlaybackDevice(handlerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ClosePlaybackDevice")
	if h, ok := s.handlers[handlerID]; ok {
		h.playbackOpen = false
	}
	return nil
}

func (s *Sim) CloseCaptureDevice(handlerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CloseCaptureDevice")
	if h, ok := s.handlers[handlerID]; ok {
		h.captureOpen = false
	}
	return nil
}

func (s *Sim) StartConnection(handlerID uint64, params ConnectParams) error {
	s.mu.Lock()
	s.record("StartConnection")
	h, ok := s.handlers[handlerID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	h.lastParams = params
	failure := s.ConnectFailure
	auto := s.AutoEstablish
	cb := s.cb
	s.mu.Unlock()

	if cb.OnConnectStatusChange == nil {
		return nil
	}

	// Callbacks arrive from a goroutine, matching the SDK's own threads.
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		cb.OnConnectStatusChange(handlerID, StatusConnecting, CodeOK)
		if failure != 0 {
			cb.OnConnectStatusChange(handlerID, StatusDisconnected, failure)
			return
		}
		if !auto {
			return
		}
		cb.OnConnectStatusChange(handlerID, StatusConnected, CodeOK)
		cb.OnConnectStatusChange(handlerID, StatusEstablishing, CodeOK)
		s.mu.Lock()
		if h, ok := s.handlers[handlerID]; ok {
			h.established = true
		}
		s.mu.Unlock()
		cb.OnConnectStatusChange(handlerID, StatusEstablished, CodeOK)
	}()
	return nil
}

func (s *Sim) StopConnection(handlerID uint64, quitMessage string) error {
	s.mu.Lock()
	s.record("StopConnection")
	h, ok := s.handlers[handlerID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	h.established = false
	cb := s.cb
	s.mu.Unlock()

	if cb.OnConnectStatusChange != nil {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			cb.OnConnectStatusChange(handlerID, StatusDisconnected, CodeOK)
		}()
	}
	return nil
}

func (s *Sim) ClientID(handlerID uint64) (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ClientID")
	h, ok := s.handlers[handlerID]
	if !ok {
		return 0, fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	if !h.established {
		return 0, fmt.Errorf("clientlib: sim: handler %d not connected", handlerID)
	}
	return s.ClientIDValue, nil
}

func (s *Sim) MoveClient(handlerID uint64, clientID uint16, channelID uint64, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(fmt.Sprintf("MoveClient:%d", channelID))
	if _, ok := s.handlers[handlerID]; !ok {
		return fmt.Errorf("clientlib: sim: unknown handler %d", handlerID)
	}
	s.moves = append(s.moves, SimMove{
		HandlerID: handlerID,
		ClientID:  clientID,
		ChannelID: channelID,
		Password:  password,
	})
	return nil
}

func (s *Sim) ErrorMessage(code uint32) string {
	return MessageForCode(code)
}

// Moves returns the recorded MoveClient invocations.
func (s *Sim) Moves() []SimMove {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SimMove, len(s.moves))
	copy(out, s.moves)
	return out
}

// LastParams returns the ConnectParams most recently passed to
// StartConnection for the handler.
func (s *Sim) LastParams(handlerID uint64) (ConnectParams, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handlers[handlerID]
	if !ok {
		return ConnectParams{}, false
	}
	return h.lastParams, true
}

// EmitStatus fires a connection status callback as if the SDK had produced
// it. Used by tests that script their own transitions.
func (s *Sim) EmitStatus(handlerID uint64, status int, code uint32) {
	s.mu.Lock()
	cb := s.cb
	if h, ok := s.handlers[handlerID]; ok {
		h.established = status == StatusEstablished
	}
	s.mu.Unlock()
	if cb.OnConnectStatusChange != nil {
		cb.OnConnectStatusChange(handlerID, status, code)
	}
}

// EmitText fires a text message callback.
func (s *Sim) EmitText(handlerID uint64, targetMode int, fromName, fromUID, message string) {
	s.mu.Lock()
	cb := s.cb
	s.mu.Unlock()
	if cb.OnTextMessage != nil {
		cb.OnTextMessage(handlerID, targetMode, fromName, fromUID, message)
	}
}

// EmitServerError fires a server error callback.
func (s *Sim) EmitServerError(handlerID uint64, code uint32, message, extra string) {
	s.mu.Lock()
	cb := s.cb
	s.mu.Unlock()
	if cb.OnServerError != nil {
		cb.OnServerError(handlerID, code, message, extra)
	}
}

var _ Library = (*Sim)(nil)
