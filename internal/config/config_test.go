package config

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VOICEBRIDGE_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GRPCAddr != DefaultGRPCAddr {
		t.Errorf("GRPCAddr = %q, want %q", cfg.GRPCAddr, DefaultGRPCAddr)
	}
	if cfg.Port != 9987 {
		t.Errorf("Port = %d, want 9987", cfg.Port)
	}
	if cfg.Nickname != "voicebridge" {
		t.Errorf("Nickname = %q, want voicebridge", cfg.Nickname)
	}
	if cfg.RosterEnabled() {
		t.Error("RosterEnabled() = true with no query user configured")
	}
	if cfg.ChannelID != 0 || cfg.ChannelPath != nil {
		t.Errorf("unexpected channel target: id=%d path=%v", cfg.ChannelID, cfg.ChannelPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("VOICEBRIDGE_HOME", home)
	t.Setenv("VOICEBRIDGE_TS3_HOST", "ts.example.com")
	t.Setenv("VOICEBRIDGE_TS3_PORT", "9988")
	t.Setenv("VOICEBRIDGE_TS3_CHANNEL_ID", "42")
	t.Setenv("VOICEBRIDGE_QUERY_USER", "serveradmin")
	t.Setenv("VOICEBRIDGE_ROSTER_PERIOD", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.VoiceAddr() != "ts.example.com:9988" {
		t.Errorf("VoiceAddr() = %q", cfg.VoiceAddr())
	}
	if cfg.ChannelID != 42 {
		t.Errorf("ChannelID = %d, want 42", cfg.ChannelID)
	}
	if !cfg.RosterEnabled() {
		t.Error("RosterEnabled() = false with query user configured")
	}
	if cfg.RosterPeriod != 10*time.Second {
		t.Errorf("RosterPeriod = %v, want 10s", cfg.RosterPeriod)
	}
	if want := filepath.Join(home, "identity.txt"); cfg.IdentityFile != want {
		t.Errorf("IdentityFile = %q, want %q", cfg.IdentityFile, want)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("VOICEBRIDGE_HOME", t.TempDir())
	t.Setenv("VOICEBRIDGE_TS3_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an unparseable port")
	}
}

func TestSplitChannelPath(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Lobby", []string{"Lobby"}},
		{"Music/Bots", []string{"Music", "Bots"}},
		{"/Music//Bots/", []string{"Music", "Bots"}},
		{`Music\Bots`, []string{"Music", "Bots"}},
		{" / ", nil},
	}
	for _, tc := range cases {
		if got := SplitChannelPath(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitChannelPath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
