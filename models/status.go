package models

// Message is a plain informational response body.
type Message struct {
	Message string `json:"message"`
}

// BackendStatus reports which store configuration is present and whether the
// backend answered a connectivity probe.
type BackendStatus struct {
	Backend        string `json:"backend"`
	SupabaseURLSet bool   `json:"supabase_url_set"`
	SupabaseKeySet bool   `json:"supabase_key_set"`
	Connected      bool   `json:"connected"`
	Error          string `json:"error,omitempty"`
}
