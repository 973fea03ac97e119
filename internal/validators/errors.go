package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCategory       = errors.New("unknown category")
	ErrEmptyValue            = errors.New("value is required")
	ErrInvalidConfidence     = errors.New("confidence out of range [0,1]")
	ErrInvalidSpanRange      = errors.New("invalid span range")
	ErrEmptyFields           = errors.New("extraction fields list cannot be empty")
	ErrEmptyConversationID   = errors.New("conversation id is required")
	ErrEmptyPersonID         = errors.New("person id is required")
	ErrEmptyDisplayName      = errors.New("display name is required")
	ErrInvalidRelationship   = errors.New("invalid relationship")
	ErrEmptyTermLabel        = errors.New("term label is required")
	ErrEmptyTermValue        = errors.New("term value is required")
	ErrReplacementLengthSkew = errors.New("replacement length differs from original")
)
