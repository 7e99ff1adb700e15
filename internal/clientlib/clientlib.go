// Package clientlib abstracts the vendor voice-client SDK behind a Go
// interface. The real SDK is a native library driven through C callbacks; it
// delivers events on threads it owns and identifies connections by numeric
// handler IDs. Everything above this package talks to the interface only.
package clientlib

import (
	"errors"
	"fmt"
	"sync"
)

// Connection status values reported through OnConnectStatusChange, in the
// order the SDK emits them during a successful connect.
const (
	StatusDisconnected = 0
	StatusConnecting   = 1
	StatusConnected    = 2
	StatusEstablishing = 3
	StatusEstablished  = 4
)

// Well-known SDK error codes surfaced by the fake and expected from the real
// binding. Codes are opaque to callers; ErrorMessage translates them.
const (
	CodeOK                 uint32 = 0x0000
	CodeUndefined          uint32 = 0x0001
	CodeUnableToOpenDevice uint32 = 0x0A01
	CodeConnectionFailed   uint32 = 0x0B01
	CodeIdentityInvalid    uint32 = 0x0C01
)

// Error carries an SDK error code together with its translated message.
type Error struct {
	Code    uint32
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("clientlib: error %#04x (%s)", e.Code, e.Message)
}

// NewError builds an Error, translating the code through lib when possible.
func NewError(lib Library, code uint32) *Error {
	msg := "unknown"
	if lib != nil {
		msg = lib.ErrorMessage(code)
	}
	return &Error{Code: code, Message: msg}
}

// Device identifies an audio device as reported by the SDK.
type Device struct {
	ID   string
	Name string
}

// ConnectParams collects everything StartConnection needs.
type ConnectParams struct {
	Identity        string
	Host            string
	Port            int
	Nickname        string
	DefaultChannel  []string // slash-split channel path; empty joins the server default
	ChannelPassword string
	ServerPassword  string
}

// Callbacks is the event table registered at library init. The SDK invokes
// these on its own internal thread; implementations must synchronise any
// state they share with other goroutines and must check the handler ID.
type Callbacks struct {
	OnConnectStatusChange func(handlerID uint64, status int, errorCode uint32)
	OnTextMessage         func(handlerID uint64, targetMode int, fromName, fromUID, message string)
	OnServerError         func(handlerID uint64, errorCode uint32, message, extra string)
}

// Library is the SDK surface the bridge consumes.
type Library interface {
	// Init initialises the library and registers the callback table.
	Init(cb Callbacks, logDir, resourceDir string) error
	// Destroy releases the library. No other method may be called afterwards.
	Destroy() error

	CreateIdentity() (string, error)

	SpawnConnectionHandler() (uint64, error)
	DestroyConnectionHandler(handlerID uint64) error

	DefaultPlaybackMode() (string, error)
	DefaultCaptureMode() (string, error)
	DefaultPlaybackDevice(mode string) (Device, error)
	DefaultCaptureDevice(mode string) (Device, error)
	OpenPlaybackDevice(handlerID uint64, mode, device string) error
	OpenCaptureDevice(handlerID uint64, mode, device string) error
	ClosePlaybackDevice(handlerID uint64) error
	CloseCaptureDevice(handlerID uint64) error

	StartConnection(handlerID uint64, params ConnectParams) error
	StopConnection(handlerID uint64, quitMessage string) error

	ClientID(handlerID uint64) (uint16, error)
	MoveClient(handlerID uint64, clientID uint16, channelID uint64, password string) error

	ErrorMessage(code uint32) string
}

// The SDK's callback signatures carry no user-data pointer, so callbacks can
// only be routed through process-wide state. Exactly one library instance may
// therefore be active per process; Acquire enforces that.
var (
	activeMu sync.Mutex
	active   bool
)

// ErrAlreadyActive is returned by Acquire when a library instance is already
// in use in this process.
var ErrAlreadyActive = errors.New("clientlib: a library instance is already active in this process")

// Acquire claims the process-wide library slot.
func Acquire() error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active {
		return ErrAlreadyActive
	}
	active = true
	return nil
}

// Release frees the process-wide library slot. Safe to call when not held.
func Release() {
	activeMu.Lock()
	active = false
	activeMu.Unlock()
}

var errorMessages = map[uint32]string{
	CodeOK:                 "ok",
	CodeUndefined:          "undefined error",
	CodeUnableToOpenDevice: "unable to open device",
	CodeConnectionFailed:   "connection to server failed",
	CodeIdentityInvalid:    "client identity invalid",
}

// MessageForCode returns the canonical text for a known error code.
func MessageForCode(code uint32) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "unknown"
}
