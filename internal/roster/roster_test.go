package roster

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/voicebridge/voicebridge/internal/eventbus"
)

type fakeSession struct {
	mu        sync.Mutex
	occupants []Occupant
	err       error
	closed    bool
}

func (f *fakeSession) Occupants() ([]Occupant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Occupant, len(f.occupants))
	copy(out, f.occupants)
	return out, nil
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSession) set(occupants []Occupant) {
	f.mu.Lock()
	f.occupants = occupants
	f.mu.Unlock()
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestMonitor(bus *eventbus.Bus, session Session, channelID int) *Monitor {
	return New(Options{
		Logger:    quietLogger(),
		Bus:       bus,
		ChannelID: channelID,
		Period:    10 * time.Millisecond,
		Dial:      func() (Session, error) { return session, nil },
	})
}

func recvRoster(t *testing.T, sub *eventbus.TypedSubscription[eventbus.RosterChangedEvent]) eventbus.RosterChangedEvent {
	t.Helper()
	select {
	case env := <-sub.C():
		return env.Payload
	case <-time.After(2 * time.Second):
		t.Fatal("no roster event")
		return eventbus.RosterChangedEvent{}
	}
}

func TestPublishesInitialRoster(t *testing.T) {
	bus := eventbus.New(eventbus.WithLogger(quietLogger()))
	defer bus.Shutdown()
	sub := eventbus.SubscribeTo(bus, eventbus.RosterChanged)
	defer sub.Close()

	session := &fakeSession{occupants: []Occupant{
		{ID: 2, ChannelID: 5, Nickname: "bob"},
		{ID: 1, ChannelID: 5, Nickname: "alice"},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go newTestMonitor(bus, session, 0).Run(ctx)

	ev := recvRoster(t, sub)
	if len(ev.Clients) != 2 {
		t.Fatalf("clients = %d, want 2", len(ev.Clients))
	}
	// Sorted by client ID.
	if ev.Clients[0].Nickname != "alice" || ev.Clients[1].Nickname != "bob" {
		t.Errorf("roster = %+v", ev.Clients)
	}
}

func TestFiltersQueryClientsAndForeignChannels(t *testing.T) {
	bus := eventbus.New(eventbus.WithLogger(quietLogger()))
	defer bus.Shutdown()
	sub := eventbus.SubscribeTo(bus, eventbus.RosterChanged)
	defer sub.Close()

	session := &fakeSession{occupants: []Occupant{
		{ID: 1, ChannelID: 5, Nickname: "alice"},
		{ID: 2, ChannelID: 5, Nickname: "monitor", Type: serverQueryClientType},
		{ID: 3, ChannelID: 9, Nickname: "elsewhere"},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go newTestMonitor(bus, session, 5).Run(ctx)

	ev := recvRoster(t, sub)
	if len(ev.Clients) != 1 || ev.Clients[0].Nickname != "alice" {
		t.Errorf("roster = %+v", ev.Clients)
	}
	if ev.ChannelID != 5 {
		t.Errorf("ChannelID = %d", ev.ChannelID)
	}
}

func TestNoEventWhenRosterUnchanged(t *testing.T) {
	bus := eventbus.New(eventbus.WithLogger(quietLogger()))
	defer bus.Shutdown()
	sub := eventbus.SubscribeTo(bus, eventbus.RosterChanged)
	defer sub.Close()

	session := &fakeSession{occupants: []Occupant{{ID: 1, ChannelID: 5, Nickname: "alice"}}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go newTestMonitor(bus, session, 0).Run(ctx)

	recvRoster(t, sub)

	// Several polls with the same roster must stay silent.
	select {
	case env := <-sub.C():
		t.Fatalf("unexpected roster event: %+v", env.Payload)
	case <-time.After(100 * time.Millisecond):
	}

	session.set([]Occupant{
		{ID: 1, ChannelID: 5, Nickname: "alice"},
		{ID: 2, ChannelID: 5, Nickname: "bob"},
	})
	ev := recvRoster(t, sub)
	if len(ev.Clients) != 2 {
		t.Errorf("clients = %d, want 2", len(ev.Clients))
	}
}

func TestPollFailureRetriesNextTick(t *testing.T) {
	bus := eventbus.New(eventbus.WithLogger(quietLogger()))
	defer bus.Shutdown()
	sub := eventbus.SubscribeTo(bus, eventbus.RosterChanged)
	defer sub.Close()

	session := &fakeSession{err: errors.New("connection reset")}

	var mu sync.Mutex
	dials := 0
	monitor := New(Options{
		Logger: quietLogger(),
		Bus:    bus,
		Period: 10 * time.Millisecond,
		Dial: func() (Session, error) {
			mu.Lock()
			dials++
			n := dials
			mu.Unlock()
			if n >= 3 {
				session.mu.Lock()
				session.err = nil
				session.occupants = []Occupant{{ID: 1, Nickname: "alice"}}
				session.mu.Unlock()
			}
			return session, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	ev := recvRoster(t, sub)
	if len(ev.Clients) != 1 {
		t.Errorf("clients = %d, want 1", len(ev.Clients))
	}
	mu.Lock()
	defer mu.Unlock()
	if dials < 3 {
		t.Errorf("dials = %d, want redial after failures", dials)
	}
}

func TestRunClosesSessionOnCancel(t *testing.T) {
	session := &fakeSession{occupants: []Occupant{{ID: 1, Nickname: "alice"}}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		newTestMonitor(nil, session, 0).Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if !session.closed {
		t.Error("session not closed on shutdown")
	}
}
