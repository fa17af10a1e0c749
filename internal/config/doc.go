// Package config provides configuration loading, merging, and validation
// facilities for the credential service and its operator tooling.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags (server only)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetToolingConfig] for accountctl.
package config
