// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package service

import (
	"context"
	"fmt"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/resolver"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/internal/vault"
	"github.com/rvanwijk/pii-guard/models"
)

type entityService struct {
	vault       VaultAccess
	resolver    *resolver.Resolver
	validator   validators.Validator
	householdID string
	logger      *logger.Logger
}

func NewEntityService(vaultAccess VaultAccess, personResolver *resolver.Resolver, cfg config.Vault, log *logger.Logger) EntityService {
	return &entityService{
		vault:       vaultAccess,
		resolver:    personResolver,
		validator:   validators.NewPIIValidator(),
		householdID: cfg.HouseholdID,
		logger:      log,
	}
}

func (s *entityService) ResolveEntity(ctx context.Context, name string) ([]models.EntityMatch, error) {
	persons, err := s.vault.ListPersons(ctx, s.householdID)
	if err != nil {
		return nil, fmt.Errorf("resolve entity: %w", err)
	}

	return s.resolver.FindMatches(name, persons), nil
}

// ConfirmAndStore writes user-confirmed extraction fields to the
// vault. The incognito check comes first: refusing before validation
// keeps even malformed incognito requests from being inspected
// further.
func (s *entityService) ConfirmAndStore(ctx context.Context, req models.ConfirmExtractionRequest) (models.ConfirmExtractionResponse, error) {
	if req.Extraction.Conversation.Incognito {
		return models.ConfirmExtractionResponse{}, ErrIncognitoConversation
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ConfirmExtractionResponse{}, err
	}
	if _, err := s.vault.GetPerson(ctx, req.PersonID); err != nil {
		return models.ConfirmExtractionResponse{}, fmt.Errorf("confirm extraction: %w", err)
	}

	var resp models.ConfirmExtractionResponse
	for i, field := range req.Extraction.Fields {
		// Checksum failures warn, they never block: the user saw the
		// value and confirmed it, the agent just flags the oddity.
		if field.Category == models.CategoryBSN && !validators.Elfproef(field.Value) {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("field %d (%s): value fails the eleven test", i, field.Category))
		}

		entry, err := s.vault.Upsert(ctx, vault.UpsertRequest{
			PersonID:         req.PersonID,
			Category:         field.Category,
			Value:            field.Value,
			Confidence:       field.Confidence,
			SourceDocumentID: req.Extraction.DocumentID,
		})
		if err != nil {
			return models.ConfirmExtractionResponse{}, fmt.Errorf("store %s value: %w", field.Category, err)
		}
		resp.Entries = append(resp.Entries, entry)
	}

	logger.FromContext(ctx).Info().
		Str("func", "entityService.ConfirmAndStore").
		Str("person_id", req.PersonID).
		Int("stored", len(resp.Entries)).
		Msg("extraction confirmed")

	return resp, nil
}

func (s *entityService) ListPersons(ctx context.Context) ([]models.Person, error) {
	return s.vault.ListPersons(ctx, s.householdID)
}

func (s *entityService) CreatePerson(ctx context.Context, req models.CreatePersonRequest) (models.Person, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Person{}, err
	}
	if req.HouseholdID == "" {
		req.HouseholdID = s.householdID
	}

	return s.vault.CreatePerson(ctx, req)
}
