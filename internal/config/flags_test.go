package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty", NetAddress{}, ""},
		{"all interfaces", NetAddress{Host: "0.0.0.0", Port: 3000}, "0.0.0.0:3000"},
		{"localhost", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"port only", NetAddress{Port: 3000}, ":3000"},
		{"ipv6 all interfaces", NetAddress{Host: "::", Port: 3000}, "[::]:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:3000",
			expectedAddr: NetAddress{Host: "localhost", Port: 3000},
		},
		{
			name:         "all interfaces",
			input:        "0.0.0.0:3000",
			expectedAddr: NetAddress{Host: "0.0.0.0", Port: 3000},
		},
		{
			name:         "empty host",
			input:        ":3000",
			expectedAddr: NetAddress{Host: "", Port: 3000},
		},
		{
			name:         "ipv6 all interfaces",
			input:        "[::]:3000",
			expectedAddr: NetAddress{Host: "::", Port: 3000},
		},
		{
			name:         "ipv6 loopback",
			input:        "[::1]:8080",
			expectedAddr: NetAddress{Host: "::1", Port: 8080},
		},
		{
			name:        "unbracketed ipv6",
			input:       "::1:8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "missing colon",
			input:       "localhost3000",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:3000",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all server flags set",
			args: []string{
				"-a", "127.0.0.1:3001",
				"-shutdown-timeout", "4s",
				"-allowed-origins", "http://a.test, http://b.test",
				"-accepted-token", "secret",
				"-display-name", "JaneDoe",
				"-verify-delay", "100ms",
				"-verify-timeout", "1s",
				"-cancel-on-timeout",
				"-created-user-id", "7",
				"-log-level", "warn",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:3001", cfg.Server.HTTPAddress)
				assert.Equal(t, 4*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "secret", cfg.App.AcceptedToken)
				assert.Equal(t, "JaneDoe", cfg.App.DisplayName)
				assert.Equal(t, 100*time.Millisecond, cfg.App.VerifyDelay)
				assert.Equal(t, time.Second, cfg.App.VerifyTimeout)
				assert.True(t, cfg.App.CancelOnTimeout)
				assert.Equal(t, int64(7), cfg.App.CreatedUserID)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "client flags",
			args: []string{
				"-server", "http://gate:3000",
				"-request-timeout", "3s",
				"-token", "valid_token",
				"-username", "carol",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://gate:3000", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "valid_token", cfg.Client.Token)
				assert.Equal(t, "carol", cfg.Client.Username)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCommandLine(t, tt.args...)

			cfg, err := ParseFlags()
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_InvalidValues verifies that malformed flag values are
// reported instead of silently ignored.
func TestParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid server address format", []string{"-a", "invalid"}},
		{"invalid port in server address", []string{"-a", "localhost:abc"}},
		{"invalid duration", []string{"-verify-timeout", "soon"}},
		{"unknown flag", []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCommandLine(t, tt.args...)

			cfg, err := ParseFlags()

			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func resetCommandLine(t *testing.T, args ...string) {
	t.Helper()

	oldCommandLine := flag.CommandLine
	oldArgs := os.Args

	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
	flag.CommandLine.SetOutput(nopWriter{})
	os.Args = append([]string{"cmd"}, args...)

	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
