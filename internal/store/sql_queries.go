package store

// Raw queries shared by both backends. $N placeholders are understood by
// pgx natively and by mattn/go-sqlite3 as positional parameters, so one
// set of constants serves the local and the household deployment alike.
const (
	createPerson = `INSERT INTO persons (id, display_name, relationship, household_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6);`

	getPerson = `SELECT id, display_name, relationship, household_id, created_at, updated_at
	FROM persons
	WHERE id = $1;`

	deletePerson = `DELETE FROM persons WHERE id = $1;`

	getVaultMeta = `SELECT salt, encrypted_dek, created_at
	FROM vault_meta
	WHERE id = 1;`

	saveVaultMeta = `INSERT INTO vault_meta (id, salt, encrypted_dek, created_at)
	VALUES (1, $1, $2, $3);`

	// Atomic issue-next-number. The first call for a category inserts the
	// row at 1; every later call bumps the stored maximum. Both engines
	// support this upsert-with-RETURNING form.
	nextPlaceholderSeq = `INSERT INTO placeholder_counters (category, last_seq)
	VALUES ($1, 1)
	ON CONFLICT (category) DO UPDATE SET last_seq = placeholder_counters.last_seq + 1
	RETURNING last_seq;`

	createVaultEntry = `INSERT INTO vault_entries (
		id,
		person_id,
		category,
		value_encrypted,
		value_index,
		placeholder,
		confidence,
		source_document_id,
		use_count,
		created_at,
		updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	findEntryByIndex = `SELECT
		id,
		person_id,
		category,
		value_encrypted,
		value_index,
		placeholder,
		confidence,
		source_document_id,
		use_count,
		created_at,
		updated_at
	FROM vault_entries
	WHERE category = $1 AND value_index = $2;`

	getEntryByPlaceholder = `SELECT
		id,
		person_id,
		category,
		value_encrypted,
		value_index,
		placeholder,
		confidence,
		source_document_id,
		use_count,
		created_at,
		updated_at
	FROM vault_entries
	WHERE placeholder = $1;`

	bindEntryPerson = `UPDATE vault_entries
	SET person_id = $2, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1;`

	incrementUseCount = `UPDATE vault_entries
	SET use_count = use_count + 1, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1;`

	deleteVaultEntry = `DELETE FROM vault_entries WHERE id = $1;`

	// Position is claimed inside the INSERT so that concurrent imports
	// cannot interleave duplicate positions.
	saveTerm = `INSERT INTO redaction_terms (id, label, original, replacement, position, created_at)
	VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM redaction_terms), $5)
	RETURNING position;`

	listTerms = `SELECT id, label, original, replacement, position, created_at
	FROM redaction_terms
	ORDER BY position;`

	deleteTerm = `DELETE FROM redaction_terms WHERE id = $1;`
)
