// Package roster watches who shares the bot's channel. It runs over the
// ServerQuery protocol, a separate TCP surface from the voice connection, so
// it keeps working (and retrying) while the voice side is degraded.
package roster

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	ts3 "github.com/multiplay/go-ts3"

	"github.com/voicebridge/voicebridge/internal/eventbus"
)

const serverQueryClientType = 1

// Occupant is one client visible through ServerQuery.
type Occupant struct {
	ID        int
	ChannelID int
	Nickname  string
	Type      int
}

// Session is an open ServerQuery session. The real implementation wraps
// go-ts3; tests substitute a fake.
type Session interface {
	Occupants() ([]Occupant, error)
	Close() error
}

// DialFunc opens a Session.
type DialFunc func() (Session, error)

// Options configure a Monitor.
type Options struct {
	Logger *log.Logger
	Bus    *eventbus.Bus

	// Addr, User, Password and ServerID describe the ServerQuery login.
	Addr     string
	User     string
	Password string
	ServerID int

	// ChannelID limits the roster to one channel when non-zero; zero
	// reports the whole server.
	ChannelID int

	// Period between polls. Defaults to 30s.
	Period time.Duration

	// Dial overrides the ServerQuery connection, for tests.
	Dial DialFunc
}

// Monitor polls the client list and publishes roster.changed on the bus
// whenever the set of occupants differs from the previous poll. Poll and
// connection failures are logged and retried on the next tick, never fatal.
type Monitor struct {
	logger    *log.Logger
	bus       *eventbus.Bus
	channelID int
	period    time.Duration
	dial      DialFunc

	session Session
	last    []eventbus.RosterClient
	primed  bool
}

// New builds a Monitor. Call Run to start polling.
func New(opts Options) *Monitor {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	period := opts.Period
	if period <= 0 {
		period = 30 * time.Second
	}
	dial := opts.Dial
	if dial == nil {
		dial = func() (Session, error) {
			return dialServerQuery(opts.Addr, opts.User, opts.Password, opts.ServerID)
		}
	}
	return &Monitor{
		logger:    logger,
		bus:       opts.Bus,
		channelID: opts.ChannelID,
		period:    period,
		dial:      dial,
	}
}

// Run polls until ctx is cancelled. It always polls once immediately so the
// first roster event does not wait a full period.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.period)
	defer ticker.Stop()
	defer m.closeSession()

	m.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	if m.session == nil {
		session, err := m.dial()
		if err != nil {
			m.logger.Printf("[roster] connect: %v", err)
			return
		}
		m.session = session
	}

	occupants, err := m.session.Occupants()
	if err != nil {
		m.logger.Printf("[roster] poll: %v", err)
		m.closeSession()
		return
	}

	roster := m.filter(occupants)
	if m.primed && equalRosters(m.last, roster) {
		return
	}
	m.last = roster
	m.primed = true

	eventbus.Publish(ctx, m.bus, eventbus.RosterChanged, eventbus.SourceRoster, eventbus.RosterChangedEvent{
		ChannelID: m.channelID,
		Clients:   roster,
	})
	m.logger.Printf("[roster] %d client(s) present", len(roster))
}

func (m *Monitor) filter(occupants []Occupant) []eventbus.RosterClient {
	roster := make([]eventbus.RosterClient, 0, len(occupants))
	for _, occ := range occupants {
		if occ.Type == serverQueryClientType {
			continue
		}
		if m.channelID != 0 && occ.ChannelID != m.channelID {
			continue
		}
		roster = append(roster, eventbus.RosterClient{ID: occ.ID, Nickname: occ.Nickname})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })
	return roster
}

func (m *Monitor) closeSession() {
	if m.session != nil {
		if err := m.session.Close(); err != nil {
			m.logger.Printf("[roster] close session: %v", err)
		}
		m.session = nil
	}
}

func equalRosters(a, b []eventbus.RosterClient) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ts3Session adapts go-ts3 to the Session interface.
type ts3Session struct {
	client *ts3.Client
}

func dialServerQuery(addr, user, password string, serverID int) (Session, error) {
	client, err := ts3.NewClient(addr)
	if err != nil {
		return nil, fmt.Errorf("roster: connect %s: %w", addr, err)
	}
	if err := client.Login(user, password); err != nil {
		client.Close()
		return nil, fmt.Errorf("roster: login: %w", err)
	}
	if err := client.Use(serverID); err != nil {
		client.Close()
		return nil, fmt.Errorf("roster: select virtual server %d: %w", serverID, err)
	}
	return &ts3Session{client: client}, nil
}

func (s *ts3Session) Occupants() ([]Occupant, error) {
	clients, err := s.client.Server.ClientList()
	if err != nil {
		return nil, fmt.Errorf("roster: client list: %w", err)
	}
	occupants := make([]Occupant, 0, len(clients))
	for _, cl := range clients {
		occupants = append(occupants, Occupant{
			ID:        cl.ID,
			ChannelID: cl.ChannelID,
			Nickname:  cl.Nickname,
			Type:      cl.Type,
		})
	}
	return occupants, nil
}

func (s *ts3Session) Close() error {
	return s.client.Close()
}
