// Package app resolves the CLI's runtime configuration: the gateway base URL
// and API key, sourced from the per-user env file and the process environment.
package app
