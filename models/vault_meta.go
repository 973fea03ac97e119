package models

import "time"

// VaultMeta is the single-row key material record of the vault: the
// public Argon2id salt and the KEK-wrapped DEK, both base64-encoded.
// It is written once when the vault is initialized and read at every
// agent start to unlock the DEK.
type VaultMeta struct {
	Salt         string
	EncryptedDEK string
	CreatedAt    time.Time
}
