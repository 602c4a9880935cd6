package client

import "github.com/viant/authprobe/schema"

// Snapshot is the client's belief about session state and identity.
// IsAuthenticated implies User != nil.
type Snapshot struct {
	User            *schema.UserInfo
	IsAuthenticated bool
}

// Empty reports whether the snapshot carries no session.
func (s Snapshot) Empty() bool {
	return s.User == nil && !s.IsAuthenticated
}

// newSnapshot builds a snapshot from a status report, dropping an authenticated
// flag that arrives without a user.
func newSnapshot(status *schema.AuthStatus) Snapshot {
	if status == nil || status.User == nil {
		return Snapshot{}
	}
	user := *status.User
	return Snapshot{User: &user, IsAuthenticated: status.IsAuthenticated}
}

// copy returns a snapshot that shares nothing with s.
func (s Snapshot) copy() Snapshot {
	if s.User == nil {
		return s
	}
	user := *s.User
	return Snapshot{User: &user, IsAuthenticated: s.IsAuthenticated}
}
