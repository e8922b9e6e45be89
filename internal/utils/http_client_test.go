package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_BaseURLScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:5000", "http://localhost:5000"},
		{"http://127.0.0.1:5000", "http://127.0.0.1:5000"},
		{"https://devconnector.example", "https://devconnector.example"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			client := NewHTTPClient(tt.in, time.Second)
			if client.BaseURL != tt.want {
				t.Errorf("BaseURL = %q, want %q", client.BaseURL, tt.want)
			}
			if client.GetClient().Timeout != time.Second {
				t.Errorf("timeout = %v, want 1s", client.GetClient().Timeout)
			}
		})
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("localhost:1", 0)
	client2 := NewHTTPClient("localhost:1", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_SendsJSONHeaders(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/api/posts/test")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode())
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}
