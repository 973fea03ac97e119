// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package models

import "strings"

// Category identifies the kind of personal data a vault entry,
// detected span, or extracted field carries.
//
// The set is closed: writes with a category outside this set are
// rejected at validation time so that a drifting detector taxonomy
// can never silently widen the vault schema.
type Category string

const (
	// CategoryBSN is the Dutch citizen service number.
	CategoryBSN Category = "bsn"

	// CategoryName is a personal name (first, last, or full).
	CategoryName Category = "name"

	// CategoryPhone is a phone number in any formatting.
	CategoryPhone Category = "phone"

	// CategoryEmail is an e-mail address.
	CategoryEmail Category = "email"

	// CategoryAddress is a postal address or a fragment of one.
	CategoryAddress Category = "address"

	// CategoryBankAccount is an IBAN or other account identifier.
	CategoryBankAccount Category = "bank_account"

	// CategoryIncome is a salary or benefit amount.
	CategoryIncome Category = "income"

	// CategoryDateOfBirth is a birth date in any formatting.
	CategoryDateOfBirth Category = "date_of_birth"

	// CategoryCustom marks mapping entries produced by the custom
	// redaction registry. It is deliberately excluded from the known
	// set: custom terms live in the registry, never in the vault.
	CategoryCustom Category = "custom"
)

// Categories lists every known category in stable order.
func Categories() []Category {
	return []Category{
		CategoryBSN,
		CategoryName,
		CategoryPhone,
		CategoryEmail,
		CategoryAddress,
		CategoryBankAccount,
		CategoryIncome,
		CategoryDateOfBirth,
	}
}

// Known reports whether c belongs to the closed category set.
func (c Category) Known() bool {
	switch c {
	case CategoryBSN, CategoryName, CategoryPhone, CategoryEmail,
		CategoryAddress, CategoryBankAccount, CategoryIncome, CategoryDateOfBirth:
		return true
	}
	return false
}

// Label returns the upper-snake placeholder stem for the category,
// e.g. "BANK_ACCOUNT" for CategoryBankAccount. Placeholders are built
// as "[" + Label + "_" + N + "]".
func (c Category) Label() string {
	return strings.ToUpper(string(c))
}

func (c Category) String() string {
	return string(c)
}
