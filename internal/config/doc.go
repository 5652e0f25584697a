// Package config provides configuration loading, merging, and validation
// facilities for the gate server and its client.
//
// Configuration is assembled from multiple sources; a field keeps the first
// non-zero value found in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults (see defaults.go)
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
