package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/voicebridge/voicebridge/internal/config"
)

// eventFrame mirrors the JSON frames the daemon writes on /events.
type eventFrame struct {
	Type      string          `json:"type"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func newEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "events",
		Short:         "Stream daemon events (connection, playback, roster, chat)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          streamEvents,
	}
	cmd.Flags().String("events-addr", "", "Daemon HTTP address serving /events (default "+config.DefaultHTTPAddr+")")
	return cmd
}

func streamEvents(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)

	addr, _ := cmd.Flags().GetString("events-addr")
	if addr = strings.TrimSpace(addr); addr == "" {
		addr = strings.TrimSpace(os.Getenv("VOICEBRIDGE_HTTP_ADDR"))
	}
	if addr == "" {
		addr = config.DefaultHTTPAddr
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/events", nil)
	if err != nil {
		return out.Error("Failed to connect to event feed", err)
	}
	defer conn.Close()

	if !out.jsonMode {
		fmt.Printf("Streaming events from %s (Ctrl+C to stop)\n", addr)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				errChan <- err
				return
			}
			printEvent(out, raw)
		}
	}()

	select {
	case <-sigChan:
		return nil
	case err := <-errChan:
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil
		}
		return out.Error("Event stream ended", err)
	}
}

func printEvent(out *OutputFormatter, raw []byte) {
	if out.jsonMode {
		fmt.Println(string(raw))
		return
	}

	var frame eventFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		fmt.Println(string(raw))
		return
	}
	line := fmt.Sprintf("%s  %-20s %s", frame.Timestamp.Format(time.RFC3339), frame.Type, frame.Source)
	if len(frame.Data) > 0 {
		line += "  " + string(frame.Data)
	}
	fmt.Println(line)
}
