package config

import "time"

// Default values reproduce the behaviour of the reference service.
const (
	DefaultHTTPAddress     = "0.0.0.0:3000"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultAcceptedToken = "valid_token"
	DefaultDisplayName   = "JohnDoe"
	DefaultVerifyDelay   = 2 * time.Second
	DefaultVerifyTimeout = 5 * time.Second
	DefaultCreatedUserID = 1337
	DefaultLogLevel      = "debug"

	DefaultAdapterAddress = "http://localhost:3000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultClientUsername = "alice"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AcceptedToken: DefaultAcceptedToken,
			DisplayName:   DefaultDisplayName,
			VerifyDelay:   DefaultVerifyDelay,
			VerifyTimeout: DefaultVerifyTimeout,
			CreatedUserID: DefaultCreatedUserID,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			Username: DefaultClientUsername,
		},
	}
}
