package store

import (
	"context"

	"github.com/rvanwijk/pii-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultFilter narrows a vault entry listing. Zero-valued fields are not
// applied; the zero filter lists everything.
type VaultFilter struct {
	// PersonID restricts entries to one household member.
	PersonID string

	// Category restricts entries to one data category.
	Category models.Category

	// Placeholders restricts entries to the given substitution tokens.
	Placeholders []string
}

// VaultRepository persists encrypted vault entries, the per-category
// placeholder sequences, and the key material row. Values cross this
// boundary encrypted only; plaintext never reaches the database layer.
type VaultRepository interface {
	// GetMeta loads the key material row. Returns ErrVaultMetaNotFound
	// when the vault was never initialized.
	GetMeta(ctx context.Context) (models.VaultMeta, error)

	// SaveMeta writes the key material row once. Returns
	// ErrVaultMetaExists when a row is already present.
	SaveMeta(ctx context.Context, meta models.VaultMeta) error

	// NextPlaceholderSeq atomically advances the category's sequence and
	// returns the issued number. Numbers are never reissued, even after
	// entry deletion.
	NextPlaceholderSeq(ctx context.Context, category models.Category) (int64, error)

	// CreateEntry inserts a new vault entry.
	CreateEntry(ctx context.Context, entry *models.VaultEntry) error

	// FindByIndex looks an entry up by its category and equality index.
	// Returns ErrVaultEntryNotFound when no entry matches.
	FindByIndex(ctx context.Context, category models.Category, valueIndex string) (models.VaultEntry, error)

	// GetByPlaceholder looks an entry up by its substitution token.
	// Returns ErrVaultEntryNotFound when no entry matches.
	GetByPlaceholder(ctx context.Context, placeholder string) (models.VaultEntry, error)

	// ListEntries returns entries matching filter, newest first.
	ListEntries(ctx context.Context, filter VaultFilter) ([]models.VaultEntry, error)

	// BindPerson attributes an unowned entry to a household member.
	BindPerson(ctx context.Context, entryID, personID string) error

	// IncrementUseCount bumps the use counter of the given entries after
	// an anonymization pass substituted them.
	IncrementUseCount(ctx context.Context, entryIDs ...string) error

	// DeleteEntry removes an entry. The placeholder number stays burned:
	// sequences are stored apart and never rewind.
	DeleteEntry(ctx context.Context, entryID string) error
}

// PersonRepository persists the household member index.
type PersonRepository interface {
	// CreatePerson inserts a new household member.
	CreatePerson(ctx context.Context, person *models.Person) error

	// GetPerson loads one member by id. Returns ErrPersonNotFound when
	// the id is unknown.
	GetPerson(ctx context.Context, id string) (models.Person, error)

	// ListPersons returns all members, optionally scoped to a household.
	ListPersons(ctx context.Context, householdID string) ([]models.Person, error)

	// DeletePerson removes a member. Vault entries bound to the member
	// keep their person_id; history stays attributable.
	DeletePerson(ctx context.Context, id string) error
}

// TermRepository persists the custom redaction registry.
type TermRepository interface {
	// SaveTerms inserts one or more terms. Positions are assigned from
	// the current maximum, preserving insertion order across restarts.
	SaveTerms(ctx context.Context, terms ...*models.RedactionTerm) error

	// ListTerms returns all terms in position order.
	ListTerms(ctx context.Context) ([]models.RedactionTerm, error)

	// DeleteTerm removes one term by id. Returns ErrTermNotFound when
	// the id is unknown.
	DeleteTerm(ctx context.Context, id string) error
}
