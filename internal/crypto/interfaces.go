package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all key handling for the encrypted vault. It knows
// nothing about the network, the database, or persons. Its single job is to
// generate and protect keys and to encrypt vault values with them.
//
// Unlock sequence:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()   (first run)
//	KEK       = GenerateKEK(passphrase, salt)              (every start)
//	EncDEK    = GetEncryptedDEK(DEK, KEK)                  (first run)
//	DEK       = DecryptDEK(EncDEK, KEK)                    (every start)
//	IndexKey  = DeriveIndexKey(DEK)                        (every start)
type KeyChainService interface {
	// GenerateEncryptionSalt generates a random salt (16 bytes / 128 bits).
	// The salt is not a secret: it is stored in vault metadata in the
	// clear. It exists so that equal passphrases produce different KEKs.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK generates the random data-encryption key
	// (32 bytes / 256 bits). The DEK encrypts every stored vault value
	// and only ever exists in plaintext inside agent memory.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the passphrase and
	// salt via Argon2id. The KEK never leaves process memory and is
	// discarded right after the DEK is unwrapped.
	GenerateKEK(passphrase string, salt []byte) []byte

	// GetEncryptedDEK wraps the DEK with the KEK via AES-GCM. The result
	// (nonce || ciphertext) is safe to persist in vault metadata; without
	// the KEK it is indistinguishable from random noise.
	GetEncryptedDEK(DEK, KEK []byte) ([]byte, error)

	// DecryptDEK unwraps the encrypted DEK using the KEK.
	// It expects the input blob to be in the format: nonce || ciphertext.
	// Returns the original DEK or an error if authentication fails
	// (almost always a wrong passphrase).
	DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error)

	// DeriveIndexKey derives the keyed-HMAC key for the vault equality
	// index from the DEK. Domain separation keeps the index key distinct
	// from the DEK even though both come from the same material.
	DeriveIndexKey(DEK []byte) string

	// EncryptString encrypts a vault value with the DEK.
	// Returns a base64-encoded blob (nonce || ciphertext).
	EncryptString(plaintext string, DEK []byte) (string, error)

	// DecryptString decrypts a base64-encoded blob produced by
	// EncryptString back into the original value.
	DecryptString(encryptedB64 string, DEK []byte) (string, error)
}
