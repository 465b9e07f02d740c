package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lockedin/lockedin-api/internal/services"
)

func TestCoachRespond_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header: %q", got)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req["model"] != "gpt-4o" {
			t.Errorf("Unexpected model: %v", req["model"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "No excuses. Run."}},
			},
		})
	}))
	defer srv.Close()

	coach := services.NewCoachService("test-key", "gpt-4o", srv.URL)
	got := coach.Respond("I'm tired today", "Run every day")
	if got != "No excuses. Run." {
		t.Errorf("Expected upstream reply, got %q", got)
	}
}

func TestCoachRespond_FallbackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	coach := services.NewCoachService("test-key", "gpt-4o", srv.URL)
	if got := coach.Respond("help", "Run"); got == "" {
		t.Error("Expected canned fallback, got empty string")
	}
}

func TestCoachRespond_FallbackWithoutKey(t *testing.T) {
	coach := services.NewCoachService("", "gpt-4o", "http://127.0.0.1:1")
	if got := coach.Respond("help", "Run"); got == "" {
		t.Error("Expected canned fallback, got empty string")
	}
}

func TestCoachRespond_FallbackOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	coach := services.NewCoachService("test-key", "gpt-4o", srv.URL)
	if got := coach.Respond("help", "Run"); got == "" {
		t.Error("Expected canned fallback, got empty string")
	}
}
