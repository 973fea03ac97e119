// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

// Package vault owns the placeholder identity of stored personal data:
// every value gets exactly one stable token, minted from a persistent
// per-category sequence, and keeps it for the lifetime of the vault.
// Values are encrypted before they reach the store; equality lookups go
// through a keyed HMAC index, never through plaintext.
package vault

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rvanwijk/pii-guard/internal/crypto"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

// ErrPassphraseIncorrect is returned by Open when the stored DEK cannot
// be unwrapped with the key derived from the given passphrase.
var ErrPassphraseIncorrect = errors.New("vault passphrase incorrect")

// stripeCount bounds how many upserts can serialize independently.
// Same-key upserts always land on the same stripe.
const stripeCount = 64

// UpsertRequest carries one confirmed value into the vault.
type UpsertRequest struct {
	// PersonID optionally binds the value to a household member.
	PersonID string

	// Category is the data category; must be a known category.
	Category models.Category

	// Value is the raw value as extracted. It is normalized before
	// identity is decided.
	Value string

	// Confidence is the detector confidence at confirmation time.
	// Manual entries pass 1.
	Confidence float64

	// SourceDocumentID records provenance when the value came from a
	// processed document.
	SourceDocumentID string
}

// Vault is the unlocked vault service. Construct it with Open; the
// zero value is unusable.
type Vault struct {
	entries  store.VaultRepository
	persons  store.PersonRepository
	keychain crypto.KeyChainService
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	dek     []byte
	stripes [stripeCount]sync.Mutex
}

// Open unlocks the vault with the given passphrase, initializing key
// material on first run. On success the equality-index hasher pool is
// keyed and the returned Vault is ready for concurrent use.
func Open(ctx context.Context, passphrase string, storages *store.Storages, keys crypto.KeyChainService, log *logger.Logger) (*Vault, error) {
	v := &Vault{
		entries:  storages.Vault,
		persons:  storages.Persons,
		keychain: keys,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}

	meta, err := v.entries.GetMeta(ctx)
	switch {
	case errors.Is(err, store.ErrVaultMetaNotFound):
		if err = v.initialize(ctx, passphrase); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("vault unlock: %w", err)
	default:
		if err = v.unlock(passphrase, meta); err != nil {
			return nil, err
		}
	}

	utils.InitHasherPool(v.keychain.DeriveIndexKey(v.dek))
	log.Info().Str("func", "vault.Open").Msg("vault unlocked")

	return v, nil
}

// initialize runs the first-run key ceremony and persists the result.
func (v *Vault) initialize(ctx context.Context, passphrase string) error {
	// 1. generate the public salt and the vault's DEK
	salt, err := v.keychain.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("vault initialization: %w", err)
	}
	dek, err := v.keychain.GenerateDEK()
	if err != nil {
		return fmt.Errorf("vault initialization: %w", err)
	}

	// 2. wrap the DEK under the passphrase-derived KEK
	kek := v.keychain.GenerateKEK(passphrase, salt)
	wrapped, err := v.keychain.GetEncryptedDEK(dek, kek)
	if err != nil {
		return fmt.Errorf("vault initialization: %w", err)
	}

	// 3. persist the key material row
	meta := models.VaultMeta{
		Salt:         base64.StdEncoding.EncodeToString(salt),
		EncryptedDEK: base64.StdEncoding.EncodeToString(wrapped),
		CreatedAt:    time.Now(),
	}
	if err = v.entries.SaveMeta(ctx, meta); err != nil {
		// another process won the first run; unlock its row instead
		if errors.Is(err, store.ErrVaultMetaExists) {
			meta, err = v.entries.GetMeta(ctx)
			if err != nil {
				return fmt.Errorf("vault initialization: %w", err)
			}
			return v.unlock(passphrase, meta)
		}
		return fmt.Errorf("vault initialization: %w", err)
	}

	v.dek = dek
	v.logger.Info().Str("func", "Vault.initialize").Msg("vault key material created")

	return nil
}

// unlock unwraps the stored DEK with the passphrase-derived KEK.
func (v *Vault) unlock(passphrase string, meta models.VaultMeta) error {
	salt, err := base64.StdEncoding.DecodeString(meta.Salt)
	if err != nil {
		return fmt.Errorf("vault unlock: corrupt salt: %w", err)
	}
	wrapped, err := base64.StdEncoding.DecodeString(meta.EncryptedDEK)
	if err != nil {
		return fmt.Errorf("vault unlock: corrupt key blob: %w", err)
	}

	kek := v.keychain.GenerateKEK(passphrase, salt)
	dek, err := v.keychain.DecryptDEK(wrapped, kek)
	if err != nil {
		// GCM authentication failure: wrong passphrase, not corruption
		return ErrPassphraseIncorrect
	}

	v.dek = dek

	return nil
}

// Lookup finds the entry for an already-normalized value. Returns
// store.ErrVaultEntryNotFound when the value was never stored.
func (v *Vault) Lookup(ctx context.Context, normalizedValue string, category models.Category) (models.VaultEntry, error) {
	entry, err := v.entries.FindByIndex(ctx, category, v.indexOf(category, normalizedValue))
	if err != nil {
		return models.VaultEntry{}, err
	}

	return v.withPlaintext(entry)
}

// Upsert stores a value, or returns the existing entry when the same
// (category, normalized value) is already present. The placeholder of
// an existing entry never changes; repeat calls only move use metadata
// and may bind a person to a previously unowned entry.
func (v *Vault) Upsert(ctx context.Context, req UpsertRequest) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if !req.Category.Known() {
		return models.VaultEntry{}, fmt.Errorf("%w: %q", validators.ErrUnknownCategory, req.Category)
	}
	normalized := Normalize(req.Value)
	if normalized == "" {
		return models.VaultEntry{}, validators.ErrEmptyValue
	}

	index := v.indexOf(req.Category, normalized)

	// same-key upserts serialize; unrelated keys stay parallel
	stripe := v.stripeFor(index)
	stripe.Lock()
	defer stripe.Unlock()

	existing, err := v.entries.FindByIndex(ctx, req.Category, index)
	switch {
	case err == nil:
		return v.refreshExisting(ctx, existing, req.PersonID)
	case !errors.Is(err, store.ErrVaultEntryNotFound):
		return models.VaultEntry{}, err
	}

	// first sighting: mint the next placeholder and store encrypted
	seq, err := v.entries.NextPlaceholderSeq(ctx, req.Category)
	if err != nil {
		return models.VaultEntry{}, err
	}
	blob, err := v.keychain.EncryptString(normalized, v.dek)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("vault encrypt: %w", err)
	}

	now := time.Now()
	entry := models.VaultEntry{
		ID:               v.ids.Generate(),
		PersonID:         req.PersonID,
		Category:         req.Category,
		NormalizedValue:  normalized,
		EncryptedValue:   blob,
		ValueIndex:       index,
		Placeholder:      fmt.Sprintf("[%s_%d]", req.Category.Label(), seq),
		Confidence:       req.Confidence,
		SourceDocumentID: req.SourceDocumentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err = v.entries.CreateEntry(ctx, &entry); err != nil {
		// lost a cross-process race: the stored entry owns the identity
		if errors.Is(err, store.ErrVaultEntryExists) {
			stored, readErr := v.entries.FindByIndex(ctx, req.Category, index)
			if readErr != nil {
				return models.VaultEntry{}, readErr
			}
			return v.refreshExisting(ctx, stored, req.PersonID)
		}
		return models.VaultEntry{}, err
	}

	log.Debug().Str("func", "Vault.Upsert").Str("placeholder", entry.Placeholder).Str("category", string(req.Category)).Msg("vault entry created")

	return entry, nil
}

// refreshExisting applies the repeat-upsert semantics to a found entry.
func (v *Vault) refreshExisting(ctx context.Context, entry models.VaultEntry, personID string) (models.VaultEntry, error) {
	if err := v.entries.IncrementUseCount(ctx, entry.ID); err != nil {
		return models.VaultEntry{}, err
	}
	entry.UseCount++

	if personID != "" && entry.PersonID == "" {
		if err := v.entries.BindPerson(ctx, entry.ID, personID); err != nil {
			return models.VaultEntry{}, err
		}
		entry.PersonID = personID
	}

	return v.withPlaintext(entry)
}

// GetByPlaceholder resolves a substitution token back to its entry,
// with the plaintext value decrypted. Re-hydration fallback path.
func (v *Vault) GetByPlaceholder(ctx context.Context, placeholder string) (models.VaultEntry, error) {
	entry, err := v.entries.GetByPlaceholder(ctx, placeholder)
	if err != nil {
		return models.VaultEntry{}, err
	}

	return v.withPlaintext(entry)
}

// RecordUse bumps use counters after an anonymization pass reused the
// given entries. Incognito passes never call this.
func (v *Vault) RecordUse(ctx context.Context, entryIDs ...string) error {
	return v.entries.IncrementUseCount(ctx, entryIDs...)
}

// ListByPerson lists a household member's entries. Values stay
// encrypted: listings surface placeholders, not plaintext.
func (v *Vault) ListByPerson(ctx context.Context, personID string) ([]models.VaultEntry, error) {
	return v.entries.ListEntries(ctx, store.VaultFilter{PersonID: personID})
}

// List lists entries matching the filter, values still encrypted.
func (v *Vault) List(ctx context.Context, filter store.VaultFilter) ([]models.VaultEntry, error) {
	return v.entries.ListEntries(ctx, filter)
}

// Remove deletes an entry. Its placeholder number is never reissued.
func (v *Vault) Remove(ctx context.Context, entryID string) error {
	return v.entries.DeleteEntry(ctx, entryID)
}

// CreatePerson adds a household member. Callers validate the request
// first; creation only ever follows an explicit user decision.
func (v *Vault) CreatePerson(ctx context.Context, req models.CreatePersonRequest) (models.Person, error) {
	now := time.Now()
	person := models.Person{
		ID:           v.ids.Generate(),
		DisplayName:  req.DisplayName,
		Relationship: req.Relationship,
		HouseholdID:  req.HouseholdID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := v.persons.CreatePerson(ctx, &person); err != nil {
		return models.Person{}, err
	}

	return person, nil
}

// GetPerson loads one household member.
func (v *Vault) GetPerson(ctx context.Context, id string) (models.Person, error) {
	return v.persons.GetPerson(ctx, id)
}

// ListPersons lists household members, optionally scoped by household.
func (v *Vault) ListPersons(ctx context.Context, householdID string) ([]models.Person, error) {
	return v.persons.ListPersons(ctx, householdID)
}

// RemovePerson deletes a household member. Entries bound to the person
// keep their binding; stored history stays attributable.
func (v *Vault) RemovePerson(ctx context.Context, id string) error {
	return v.persons.DeletePerson(ctx, id)
}

// withPlaintext decrypts the stored blob into NormalizedValue.
func (v *Vault) withPlaintext(entry models.VaultEntry) (models.VaultEntry, error) {
	value, err := v.keychain.DecryptString(entry.EncryptedValue, v.dek)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("vault decrypt: %w", err)
	}
	entry.NormalizedValue = value

	return entry, nil
}

// indexOf computes the keyed equality index for a normalized value.
// The NUL separator keeps (category, value) pairs unambiguous.
func (v *Vault) indexOf(category models.Category, normalized string) string {
	return hex.EncodeToString(utils.Hash([]byte(string(category) + "\x00" + normalized)))
}

// stripeFor maps an index key onto its serialization stripe.
func (v *Vault) stripeFor(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))

	return &v.stripes[h.Sum32()%stripeCount]
}
