// Package authprobe wires the auth status client to an auth API.
//
// NewClient builds a credentialed HTTP client (cookie jar plus captured bearer
// token), the API service and the browsing context used for the Google login
// redirect, all driven by ClientOptions. ClientOptions can be populated from CLI
// flags or a YAML file, see the console package.
//
// Example:
//
//	cli, _ := authprobe.NewClient(&authprobe.ClientOptions{BaseURL: "http://localhost:8080/api/v1"})
//	_ = cli.Initialize(ctx)
package authprobe
