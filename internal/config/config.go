// Package config loads the immutable process configuration from the
// environment and owns the on-disk directory layout of the bridge.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultGRPCAddr is the control-plane listen address used when
	// VOICEBRIDGE_GRPC_ADDR is unset. The control plane is a localhost
	// trust boundary; binding anything else is the operator's decision.
	DefaultGRPCAddr = "127.0.0.1:50051"

	// DefaultHTTPAddr serves the /events WebSocket feed and /healthz.
	DefaultHTTPAddr = "127.0.0.1:50052"

	defaultVoicePort    = 9987
	defaultQueryPort    = 10011
	defaultRosterPeriod = 30 * time.Second
)

// Config holds every setting the bridge reads. Loaded once at startup and
// never mutated afterwards.
type Config struct {
	// Control plane.
	GRPCAddr string
	HTTPAddr string

	// Voice server connection.
	Host            string
	Port            int
	Nickname        string
	Identity        string // literal identity value; overrides IdentityFile
	IdentityFile    string
	ServerPassword  string
	ChannelPassword string
	ChannelID       uint64   // 0 means "join by path or stay in default"
	ChannelPath     []string // slash-delimited path, split at load time

	// Native library directories.
	ResourceDir string
	LogDir      string

	// Optional ServerQuery roster monitor. Disabled unless QueryUser is set.
	QueryUser     string
	QueryPassword string
	QueryPort     int
	QueryServerID int
	RosterPeriod  time.Duration

	// Settings database. Defaults to <home>/voicebridge.db.
	DBPath string
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	home := Home()

	cfg := Config{
		GRPCAddr:        getenv("VOICEBRIDGE_GRPC_ADDR", DefaultGRPCAddr),
		HTTPAddr:        getenv("VOICEBRIDGE_HTTP_ADDR", DefaultHTTPAddr),
		Host:            getenv("VOICEBRIDGE_TS3_HOST", "127.0.0.1"),
		Port:            defaultVoicePort,
		Nickname:        getenv("VOICEBRIDGE_TS3_NICKNAME", "voicebridge"),
		Identity:        getenv("VOICEBRIDGE_TS3_IDENTITY", ""),
		IdentityFile:    getenv("VOICEBRIDGE_TS3_IDENTITY_FILE", filepath.Join(home, "identity.txt")),
		ServerPassword:  getenv("VOICEBRIDGE_TS3_SERVER_PASSWORD", ""),
		ChannelPassword: getenv("VOICEBRIDGE_TS3_CHANNEL_PASSWORD", ""),
		ResourceDir:     getenv("VOICEBRIDGE_TS3_RESOURCES", filepath.Join(home, "sdk")),
		LogDir:          getenv("VOICEBRIDGE_TS3_LOG", filepath.Join(home, "logs")),
		QueryUser:       getenv("VOICEBRIDGE_QUERY_USER", ""),
		QueryPassword:   getenv("VOICEBRIDGE_QUERY_PASSWORD", ""),
		QueryPort:       defaultQueryPort,
		QueryServerID:   1,
		RosterPeriod:    defaultRosterPeriod,
		DBPath:          getenv("VOICEBRIDGE_DB", filepath.Join(home, "voicebridge.db")),
	}

	var err error
	if cfg.Port, err = getenvInt("VOICEBRIDGE_TS3_PORT", defaultVoicePort); err != nil {
		return Config{}, err
	}
	if cfg.QueryPort, err = getenvInt("VOICEBRIDGE_QUERY_PORT", defaultQueryPort); err != nil {
		return Config{}, err
	}
	if cfg.QueryServerID, err = getenvInt("VOICEBRIDGE_QUERY_SERVER_ID", 1); err != nil {
		return Config{}, err
	}

	if raw := strings.TrimSpace(os.Getenv("VOICEBRIDGE_TS3_CHANNEL_ID")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse VOICEBRIDGE_TS3_CHANNEL_ID: %w", err)
		}
		cfg.ChannelID = id
	}
	cfg.ChannelPath = SplitChannelPath(os.Getenv("VOICEBRIDGE_TS3_CHANNEL_PATH"))

	if raw := strings.TrimSpace(os.Getenv("VOICEBRIDGE_ROSTER_PERIOD")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse VOICEBRIDGE_ROSTER_PERIOD: %w", err)
		}
		if d > 0 {
			cfg.RosterPeriod = d
		}
	}

	return cfg, nil
}

// RosterEnabled reports whether the optional ServerQuery monitor should run.
func (c Config) RosterEnabled() bool {
	return c.QueryUser != ""
}

// VoiceAddr returns the host:port of the voice server.
func (c Config) VoiceAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// QueryAddr returns the host:port of the ServerQuery endpoint.
func (c Config) QueryAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.QueryPort)
}

// SplitChannelPath splits a slash-delimited channel path into its segments.
// Both separators are accepted and empty segments are dropped, matching the
// channel addressing used by the voice protocol.
func SplitChannelPath(raw string) []string {
	var parts []string
	for _, seg := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if seg = strings.TrimSpace(seg); seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}

// Home returns the bridge home directory (~/.voicebridge), overridable via
// VOICEBRIDGE_HOME for tests and packaging.
func Home() string {
	if h := strings.TrimSpace(os.Getenv("VOICEBRIDGE_HOME")); h != "" {
		return h
	}
	userHome, _ := os.UserHomeDir()
	return filepath.Join(userHome, ".voicebridge")
}

// EnsureDirs creates the directories the daemon writes into.
func EnsureDirs(cfg Config) error {
	dirs := []string{Home(), cfg.LogDir}
	if cfg.IdentityFile != "" {
		dirs = append(dirs, filepath.Dir(cfg.IdentityFile))
	}
	if cfg.DBPath != "" {
		dirs = append(dirs, filepath.Dir(cfg.DBPath))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create directory %s: %w", dir, err)
		}
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s: %w", key, err)
	}
	return v, nil
}
