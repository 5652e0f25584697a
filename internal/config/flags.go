package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags shared by the server and the
// client binaries.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-shutdown-timeout graceful shutdown bound (e.g. "10s")
//	-allowed-origins comma-separated CORS origins
//	-accepted-token token accepted by the simulated verifier
//	-display-name display name of the admitted identity
//	-verify-delay simulated verification latency (e.g. "2s")
//	-verify-timeout gate deadline (e.g. "5s")
//	-cancel-on-timeout cancel in-flight verification on deadline
//	-created-user-id id returned by POST /users
//	-log-level zerolog level
//	-server gate service base URL used by the client
//	-request-timeout client request timeout
//	-token Authorization value sent by the client
//	-username username posted by the client
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var allowedOrigins []string
	cfg := &StructuredConfig{}

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Func("allowed-origins", "Comma-separated CORS origins", func(s string) error {
		allowedOrigins = splitList(s)
		return nil
	})
	fs.StringVar(&cfg.App.AcceptedToken, "accepted-token", "", "Token accepted by the verifier")
	fs.StringVar(&cfg.App.DisplayName, "display-name", "", "Display name of the admitted identity")
	fs.DurationVar(&cfg.App.VerifyDelay, "verify-delay", 0, "Simulated verification delay (e.g., 2s)")
	fs.DurationVar(&cfg.App.VerifyTimeout, "verify-timeout", 0, "Verification deadline (e.g., 5s)")
	fs.BoolVar(&cfg.App.CancelOnTimeout, "cancel-on-timeout", false, "Cancel verification when the deadline elapses")
	fs.Int64Var(&cfg.App.CreatedUserID, "created-user-id", 0, "Identifier returned for created users")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Gate service base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Client.Token, "token", "", "Authorization header value")
	fs.StringVar(&cfg.Client.Username, "username", "", "Username to create")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.AllowedOrigins = allowedOrigins

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// value does not shadow other configuration sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port (IPv6 hosts in brackets,
// e.g. "[::1]:3000") and populates the NetAddress. It validates the port
// range, checks IP correctness unless host is "localhost" or empty (all
// interfaces), and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
