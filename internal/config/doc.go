// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source fall back to documented defaults, so a
// bare process only needs a token sign key and issuer to start.
// The main entry point is [GetStructuredConfig].
package config
