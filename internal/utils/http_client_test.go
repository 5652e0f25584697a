package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded resty client")
	}
}

func TestNewHTTPClient_AppliesBaseURLAndTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", 3*time.Second)

	if client.BaseURL != "http://localhost:3000" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_ZeroTimeoutKeepsDefault(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", 0)

	if client.GetClient().Timeout != 0 {
		t.Errorf("expected no timeout, got %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected different *resty.Client instances")
	}
}

func TestHTTPClient_SendsAcceptHeader(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	if _, err := client.R().Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if accept != "application/json, text/plain" {
		t.Errorf("unexpected Accept header %q", accept)
	}
}
