package eventbus

import "time"

// Topic identifies a logical channel on the bus.
type Topic string

const (
	TopicConnectionStatus Topic = "connection.status"
	TopicPlaybackChanged  Topic = "playback.changed"
	TopicChatMessage      Topic = "chat.message"
	TopicRosterChanged    Topic = "roster.changed"
	TopicBridgeLog        Topic = "bridge.log"
)

// Source describes which component produced an event.
type Source string

const (
	SourceConnection Source = "connection"
	SourcePlayback   Source = "playback"
	SourceRoster     Source = "roster"
	SourceServer     Source = "server"
	SourceUnknown    Source = "unknown"
)

// Envelope wraps every message published on the bus.
type Envelope struct {
	Topic         Topic
	Timestamp     time.Time
	Source        Source
	CorrelationID string
	Payload       any
}

// ConnectionState mirrors the connection manager's lifecycle states as seen
// by event consumers.
type ConnectionState string

const (
	ConnectionConnecting ConnectionState = "connecting"
	ConnectionConnected  ConnectionState = "connected"
	ConnectionDegraded   ConnectionState = "degraded"
	ConnectionTerminated ConnectionState = "terminated"
)

// ConnectionStatusEvent notifies consumers about connection transitions.
type ConnectionStatusEvent struct {
	State     ConnectionState
	ErrorCode uint32
	Detail    string
}

// PlaybackChange classifies playback model mutations.
type PlaybackChange string

const (
	PlaybackStarted PlaybackChange = "started"
	PlaybackPaused  PlaybackChange = "paused"
	PlaybackResumed PlaybackChange = "resumed"
	PlaybackStopped PlaybackChange = "stopped"
	PlaybackSkipped PlaybackChange = "skipped"
	PlaybackVolume  PlaybackChange = "volume"
	PlaybackFx      PlaybackChange = "fx"
)

// PlaybackChangedEvent carries the state after a playback command.
type PlaybackChangedEvent struct {
	Change        PlaybackChange
	Title         string
	SourceURL     string
	VolumePercent int
}

// ChatMessageEvent carries an inbound text message from the voice server.
type ChatMessageEvent struct {
	TargetMode  int
	InvokerName string
	InvokerUID  string
	Message     string
}

// RosterClient is one occupant of the monitored channel.
type RosterClient struct {
	ID       int
	Nickname string
}

// RosterChangedEvent reports the occupants of the monitored channel after a
// change was observed.
type RosterChangedEvent struct {
	ChannelID int
	Clients   []RosterClient
}

// LogLevel grades bridge log events for remote consumers.
type LogLevel int

const (
	LevelDebug LogLevel = 1
	LevelInfo  LogLevel = 2
	LevelWarn  LogLevel = 3
	LevelError LogLevel = 4
)

// BridgeLogEvent mirrors a log line onto the bus for the event feed.
type BridgeLogEvent struct {
	Level   LogLevel
	Message string
}

// Typed topic descriptors used with Publish/SubscribeTo.
var (
	ConnectionStatus = NewTopicDef[ConnectionStatusEvent](TopicConnectionStatus)
	PlaybackChanged  = NewTopicDef[PlaybackChangedEvent](TopicPlaybackChanged)
	ChatMessage      = NewTopicDef[ChatMessageEvent](TopicChatMessage)
	RosterChanged    = NewTopicDef[RosterChangedEvent](TopicRosterChanged)
	BridgeLog        = NewTopicDef[BridgeLogEvent](TopicBridgeLog)
)
