package models

// Conversation identifies the chat a request belongs to and whether it
// runs incognito.
//
// Incognito is an isolation boundary, not an optimization: incognito
// requests never read the vault, never bump use counts, and any
// attempt to store data on their behalf is refused outright.
type Conversation struct {
	ID        string `json:"id"`
	Incognito bool   `json:"incognito"`
	ProfileID string `json:"profile_id,omitempty"`
}
