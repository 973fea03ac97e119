package models

import "time"

const (
	RelationshipSelf      = "self"
	RelationshipPartner   = "partner"
	RelationshipDependent = "dependent"
	RelationshipOther     = "other"
)

// Person is a member of the household index. Vault entries may be
// bound to a person so that "jan's BSN" and "sofie's BSN" stay apart.
//
// A Person is only ever created after the user confirmed it in the
// resolve dialog; fuzzy name matches propose candidates but never
// create or merge records on their own.
type Person struct {
	// ID is the UUID of the person record.
	ID string `json:"id"`

	// DisplayName is the name shown in disambiguation dialogs.
	DisplayName string `json:"display_name"`

	// Relationship positions the person inside the household
	// (self, partner, dependent, other).
	Relationship string `json:"relationship"`

	// HouseholdID groups persons that share one vault.
	HouseholdID string `json:"household_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
