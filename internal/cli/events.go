package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go2/internal/model"
)

func newEventsCmd() *cobra.Command {
	var (
		jsonOutput bool
		count      int
	)

	cmd := &cobra.Command{
		Use:   "events <id>",
		Short: "Stream live events from a match",
		Long: `Connect to the match's websocket endpoint and stream events in real-time.

Events include:
  - connected: The stream is open
  - ship_placed: A ship was placed (computer placements carry no position)
  - fleet_cleared: A side's board was emptied
  - attack_resolved: A shot was fired
  - turn_passed: The turn moved to the other side
  - match_over: The match ended, with the revealed commitment
  - match_deleted: The match was deleted and the stream closes

Press Ctrl+C to disconnect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return streamEvents(ctx, cmd.OutOrStdout(), args[0], jsonOutput, count)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")
	cmd.Flags().IntVar(&count, "count", 0, "Disconnect after this many events (0 streams until closed)")

	return cmd
}

func streamEvents(ctx context.Context, w io.Writer, matchID string, jsonOutput bool, count int) error {
	url := client.WebsocketURL("/matches/" + matchID + "/events")

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("match %s not found", matchID)
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Unblock ReadMessage on interrupt
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	if !jsonOutput {
		fmt.Fprintf(w, "Connected to match %s\n", matchID)
	}

	seen := 0
	for count == 0 || seen < count {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				break
			}
			return fmt.Errorf("stream error: %w", err)
		}

		if jsonOutput {
			fmt.Fprintln(w, string(data))
		} else if err := printEvent(w, data); err != nil {
			return err
		}
		seen++
	}

	if count > 0 && seen >= count {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
	if !jsonOutput {
		fmt.Fprintln(w, "Disconnected")
	}
	return nil
}

func printEvent(w io.Writer, data []byte) error {
	var event struct {
		model.Event
		Payload json.RawMessage `json:"payload,omitempty"`
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.New("stream error: malformed event")
	}

	timestamp := event.Timestamp.Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %s", timestamp, event.Type)
	if event.Side != "" {
		line += " (" + string(event.Side) + ")"
	}
	if len(event.Payload) > 0 {
		line += ": " + string(event.Payload)
	}
	fmt.Fprintln(w, line)
	return nil
}
