package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rvanwijk/pii-guard/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldCategory targets the data category of a span or extracted field.
	FieldCategory = "category"

	// FieldValue targets the literal value of an extracted field.
	FieldValue = "value"

	// FieldConfidence targets the detector confidence score.
	FieldConfidence = "confidence"

	// FieldRange targets the byte range of a detected span.
	FieldRange = "range"

	// FieldFields targets the candidate field list of an extraction.
	FieldFields = "fields"

	// FieldConversationID targets the conversation identifier of an extraction.
	FieldConversationID = "conversation_id"

	// FieldExtraction targets the nested extraction of a confirm request.
	FieldExtraction = "extraction"

	// FieldPersonID targets the person identifier binding stored values.
	FieldPersonID = "person_id"

	// FieldDisplayName targets the display name of a household member.
	FieldDisplayName = "display_name"

	// FieldRelationship targets the household relationship of a person.
	FieldRelationship = "relationship"

	// FieldTermLabel targets the label of a custom redaction term.
	FieldTermLabel = "term_label"

	// FieldTermValue targets the literal of a custom redaction term.
	FieldTermValue = "term_value"

	// FieldTermReplacement enforces the length-preservation rule of a
	// stored redaction term: replacement and original must have equal
	// rune counts.
	FieldTermReplacement = "term_replacement"
)

// allowedRelationships is the exhaustive set of household relationship
// values accepted by the validator. Any relationship not present in this
// slice is considered invalid.
var allowedRelationships = []string{
	models.RelationshipSelf,
	models.RelationshipPartner,
	models.RelationshipDependent,
	models.RelationshipOther,
}

// PIIValidator implements the Validator interface for all personal-data
// domain models: DetectedSpan, ExtractedField, PIIExtraction,
// ConfirmExtractionRequest, Person, CreatePersonRequest, RedactionTerm,
// and AddTermRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type PIIValidator struct {
}

// NewPIIValidator constructs a new PIIValidator
// and returns it as the Validator interface.
func NewPIIValidator() Validator {
	return &PIIValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.DetectedSpan / *models.DetectedSpan
//   - models.ExtractedField / *models.ExtractedField
//   - models.PIIExtraction / *models.PIIExtraction
//   - models.ConfirmExtractionRequest / *models.ConfirmExtractionRequest
//   - models.Person / *models.Person
//   - models.CreatePersonRequest / *models.CreatePersonRequest
//   - models.RedactionTerm / *models.RedactionTerm
//   - models.AddTermRequest / *models.AddTermRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *PIIValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DetectedSpan:
		return v.validateSpan(ctx, value, fields...)
	case *models.DetectedSpan:
		return v.validateSpan(ctx, *value, fields...)

	case models.ExtractedField:
		return v.validateExtractedField(ctx, value, fields...)
	case *models.ExtractedField:
		return v.validateExtractedField(ctx, *value, fields...)

	case models.PIIExtraction:
		return v.validateExtraction(ctx, value, fields...)
	case *models.PIIExtraction:
		return v.validateExtraction(ctx, *value, fields...)

	case models.ConfirmExtractionRequest:
		return v.validateConfirmRequest(ctx, value, fields...)
	case *models.ConfirmExtractionRequest:
		return v.validateConfirmRequest(ctx, *value, fields...)

	case models.Person:
		return v.validatePerson(ctx, value, fields...)
	case *models.Person:
		return v.validatePerson(ctx, *value, fields...)

	case models.CreatePersonRequest:
		return v.validateCreatePersonRequest(ctx, value, fields...)
	case *models.CreatePersonRequest:
		return v.validateCreatePersonRequest(ctx, *value, fields...)

	case models.RedactionTerm:
		return v.validateRedactionTerm(ctx, value, fields...)
	case *models.RedactionTerm:
		return v.validateRedactionTerm(ctx, *value, fields...)

	case models.AddTermRequest:
		return v.validateAddTermRequest(ctx, value, fields...)
	case *models.AddTermRequest:
		return v.validateAddTermRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidRelationship reports whether rel is one of the recognized
// household relationship values defined in allowedRelationships.
func isValidRelationship(rel string) bool {
	for _, r := range allowedRelationships {
		if rel == r {
			return true
		}
	}
	return false
}

// validateSpan validates a single DetectedSpan reported by the detector.
//
// Default validated fields (when none specified):
// Range, Category, Confidence.
//
// Returns the first encountered validation error or nil.
func (v *PIIValidator) validateSpan(ctx context.Context, span models.DetectedSpan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRange, FieldCategory, FieldConfidence}
	}

	for _, f := range fields {
		switch f {
		case FieldRange:
			if span.Start < 0 || span.End <= span.Start {
				return ErrInvalidSpanRange
			}
		case FieldCategory:
			if !span.Category.Known() {
				return ErrUnknownCategory
			}
		case FieldConfidence:
			if span.Confidence < 0 || span.Confidence > 1 {
				return ErrInvalidConfidence
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateExtractedField validates a single candidate field of an
// extraction.
//
// Default validated fields: Category, Value, Confidence.
//
// The category must belong to the closed vault category set; this is
// the check that keeps a drifting detector taxonomy from widening the
// vault schema.
func (v *PIIValidator) validateExtractedField(ctx context.Context, field models.ExtractedField, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategory, FieldValue, FieldConfidence}
	}

	for _, f := range fields {
		switch f {
		case FieldCategory:
			if !field.Category.Known() {
				return ErrUnknownCategory
			}
		case FieldValue:
			if strings.TrimSpace(field.Value) == "" {
				return ErrEmptyValue
			}
		case FieldConfidence:
			if field.Confidence < 0 || field.Confidence > 1 {
				return ErrInvalidConfidence
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateExtraction validates a PIIExtraction, which contains the batch
// of candidate fields awaiting user confirmation.
//
// Default validated fields: ConversationID, Fields.
//
// When FieldFields is validated, each candidate in Fields is
// individually checked with validateExtractedField.
//
// Returns a wrapped error indicating the index of the first invalid field.
func (v *PIIValidator) validateExtraction(ctx context.Context, extraction models.PIIExtraction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConversationID, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldConversationID:
			if extraction.Conversation.ID == "" {
				return ErrEmptyConversationID
			}
		case FieldFields:
			if len(extraction.Fields) == 0 {
				return ErrEmptyFields
			}
			for i, field := range extraction.Fields {
				if err := v.validateExtractedField(ctx, field); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateConfirmRequest validates a ConfirmExtractionRequest, which
// binds confirmed fields to a person before they are written to the
// vault.
//
// Default validated fields: PersonID, Extraction.
func (v *PIIValidator) validateConfirmRequest(ctx context.Context, request models.ConfirmExtractionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPersonID, FieldExtraction}
	}

	for _, f := range fields {
		switch f {
		case FieldPersonID:
			if request.PersonID == "" {
				return ErrEmptyPersonID
			}
		case FieldExtraction:
			if err := v.validateExtraction(ctx, request.Extraction); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePerson validates a household member record.
//
// Default validated fields: DisplayName, Relationship.
func (v *PIIValidator) validatePerson(ctx context.Context, person models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDisplayName, FieldRelationship}
	}

	for _, f := range fields {
		switch f {
		case FieldDisplayName:
			if strings.TrimSpace(person.DisplayName) == "" {
				return ErrEmptyDisplayName
			}
		case FieldRelationship:
			if !isValidRelationship(person.Relationship) {
				return ErrInvalidRelationship
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreatePersonRequest validates the request that creates a new
// household member from the resolve dialog. Same rules as for a Person.
func (v *PIIValidator) validateCreatePersonRequest(ctx context.Context, request models.CreatePersonRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDisplayName, FieldRelationship}
	}

	for _, f := range fields {
		switch f {
		case FieldDisplayName:
			if strings.TrimSpace(request.DisplayName) == "" {
				return ErrEmptyDisplayName
			}
		case FieldRelationship:
			if !isValidRelationship(request.Relationship) {
				return ErrInvalidRelationship
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRedactionTerm validates a stored custom redaction term.
//
// Default validated fields: TermLabel, TermValue, TermReplacement.
//
// FieldTermReplacement enforces the length-preservation rule: the
// replacement must cover exactly as many runes as the original so that
// surrounding text layout survives substitution.
func (v *PIIValidator) validateRedactionTerm(ctx context.Context, term models.RedactionTerm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTermLabel, FieldTermValue, FieldTermReplacement}
	}

	for _, f := range fields {
		switch f {
		case FieldTermLabel:
			if strings.TrimSpace(term.Label) == "" {
				return ErrEmptyTermLabel
			}
		case FieldTermValue:
			if term.Original == "" {
				return ErrEmptyTermValue
			}
		case FieldTermReplacement:
			if utf8.RuneCountInString(term.Replacement) != utf8.RuneCountInString(term.Original) {
				return ErrReplacementLengthSkew
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAddTermRequest validates the request that registers one custom
// redaction term.
//
// Default validated fields: TermLabel, TermValue.
func (v *PIIValidator) validateAddTermRequest(ctx context.Context, request models.AddTermRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTermLabel, FieldTermValue}
	}

	for _, f := range fields {
		switch f {
		case FieldTermLabel:
			if strings.TrimSpace(request.Label) == "" {
				return ErrEmptyTermLabel
			}
		case FieldTermValue:
			if request.Value == "" {
				return ErrEmptyTermValue
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
