// Package console implements the interactive terminal front end of authprobe.
//
// The console reads one command per line, drives the auth status client and
// renders the session snapshot, operation results and retained forms after
// each command. Options come from CLI flags, optionally layered over a YAML
// config file loaded with afs (so any afs supported URL works).
package console
