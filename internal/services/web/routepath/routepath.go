// Package routepath stores canonical HTTP paths for the web service.
package routepath

const (
	Root   = "/"
	Goal   = "/goal"
	Health = "/healthz"
)
