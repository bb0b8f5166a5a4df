package gemini

import "time"

const (
	// DefaultModel answers skill questions when the gemini provider has no model set.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the v1beta endpoint; BaseURL in the provider config overrides it
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds one call. A voice turn cannot wait longer anyway.
	DefaultTimeout = 30 * time.Second

	// RoleModel is Gemini's name for the assistant role
	RoleModel = "model"
)
