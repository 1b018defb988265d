package core

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogRingBuffer(t *testing.T) {
	rl := NewRequestLog(3)
	for i := 0; i < 5; i++ {
		rl.Add(RequestLogEntry{Path: "/p", StatusCode: 200 + i})
	}

	entries := rl.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].StatusCode != 202 {
		t.Errorf("expected the oldest entries evicted, got %v", entries[0])
	}

	rl.Clear()
	if len(rl.Entries()) != 0 {
		t.Error("expected an empty log after clear")
	}
}

func TestServerRecordsRequests(t *testing.T) {
	srv := New(&Config{Name: "test"})
	srv.Router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"pong": "yes"})
	})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %s", ct)
	}

	entries := srv.Middleware().ReqLog.Entries()
	if len(entries) != 1 || entries[0].Path != "/ping" {
		t.Fatalf("expected the request in the log, got %v", entries)
	}
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "no such thing")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"no such thing", "Not Found", "404"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q, got %s", want, body)
		}
	}
}
