package sync

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"
)

func TestHubBroadcastsToTCPClients(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	t.Cleanup(func() {
		server.Close()
		client.Close()
	})
	hub.Add(server)

	if got := hub.Stats().TCPClients; got != 1 {
		t.Fatalf("TCPClients = %d, want 1", got)
	}

	go hub.BroadcastJSON(ScrapeEvent{
		Type:        ScrapePageEvent,
		RunID:       "run-1",
		Page:        2,
		PageQuotes:  10,
		TotalQuotes: 20,
		At:          time.Now().UTC(),
	})

	line, err := bufio.NewReader(client).ReadBytes('\n')
	if err != nil {
		t.Fatalf("read event: %v", err)
	}

	var ev ScrapeEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Type != ScrapePageEvent || ev.Page != 2 || ev.TotalQuotes != 20 {
		t.Errorf("event = %+v", ev)
	}
}

func TestHubDropsDeadClients(t *testing.T) {
	hub := NewHub()

	server, client := net.Pipe()
	hub.Add(server)
	client.Close()
	server.Close()

	hub.BroadcastJSON(ScrapeEvent{Type: ScrapeStartedEvent, RunID: "run-2"})

	if got := hub.Stats().TCPClients; got != 0 {
		t.Errorf("TCPClients = %d, want 0 after failed write", got)
	}
}

// A nil hub is a valid no-op event sink.
func TestNilHubBroadcast(t *testing.T) {
	var hub *Hub
	hub.BroadcastJSON(ScrapeEvent{Type: ScrapeStartedEvent})
}
