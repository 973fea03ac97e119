// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package service

import (
	"context"

	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/vault"
	"github.com/rvanwijk/pii-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// PipelineService runs the anonymization pipeline: detect, substitute,
// scan, and for chat also complete and re-hydrate.
type PipelineService interface {
	Anonymize(ctx context.Context, req models.AnonymizeRequest) (models.AnonymizeResponse, error)
	Rehydrate(ctx context.Context, req models.RehydrateRequest) (models.RehydrateResponse, error)

	ProcessDocument(ctx context.Context, doc models.ParsedDocument, conversation models.Conversation) (models.ProcessedDocument, error)
	ProcessBatch(ctx context.Context, req models.BatchDocumentsRequest) (models.BatchDocumentsResponse, error)

	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.ChatResponse, error)
}

// EntityService resolves names against the household person index and
// stores user-confirmed extractions.
type EntityService interface {
	ResolveEntity(ctx context.Context, name string) ([]models.EntityMatch, error)
	ConfirmAndStore(ctx context.Context, req models.ConfirmExtractionRequest) (models.ConfirmExtractionResponse, error)

	ListPersons(ctx context.Context) ([]models.Person, error)
	CreatePerson(ctx context.Context, req models.CreatePersonRequest) (models.Person, error)
}

// VaultService exposes vault entry management to the shell.
type VaultService interface {
	ListEntries(ctx context.Context, personID string, category models.Category) ([]models.VaultEntry, error)
	RemoveEntry(ctx context.Context, entryID string) error
}

// TermService manages the custom redaction term list.
type TermService interface {
	ListTerms(ctx context.Context) []models.RedactionTerm
	AddTerm(ctx context.Context, label, value string) (models.RedactionTerm, error)
	ImportTerms(ctx context.Context, text string) (int, error)
	RemoveTerm(ctx context.Context, position int) error
	ClearTerms(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// VaultAccess is the slice of the unlocked vault the services depend
// on. *vault.Vault satisfies it.
type VaultAccess interface {
	Upsert(ctx context.Context, req vault.UpsertRequest) (models.VaultEntry, error)
	List(ctx context.Context, filter store.VaultFilter) ([]models.VaultEntry, error)
	Remove(ctx context.Context, entryID string) error

	CreatePerson(ctx context.Context, req models.CreatePersonRequest) (models.Person, error)
	GetPerson(ctx context.Context, id string) (models.Person, error)
	ListPersons(ctx context.Context, householdID string) ([]models.Person, error)
}
