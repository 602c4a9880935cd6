package schema

// ErrorResponse is a generic failure body.
type ErrorResponse struct {
	Error string `json:"error"`
	//UseOAuth is set when an account was registered with Google only
	UseOAuth string `json:"use_oauth,omitempty"`
	//ActionRequired is set when an existing account needs linking
	ActionRequired string `json:"action_required,omitempty"`
}
