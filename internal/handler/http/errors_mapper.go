package http

import (
	"errors"
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/llm"
	"github.com/rvanwijk/pii-guard/internal/service"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

var errorStatusMap = map[error]int{
	service.ErrIncognitoConversation: http.StatusForbidden,
	service.ErrEmptyMessage:          http.StatusBadRequest,
	service.ErrEmptyDocument:         http.StatusBadRequest,

	models.ErrInvalidProfile: http.StatusBadRequest,
	llm.ErrModelUnavailable:  http.StatusBadGateway,

	validators.ErrUnsupportedType:       http.StatusBadRequest,
	validators.ErrUnknownField:          http.StatusBadRequest,
	validators.ErrUnknownCategory:       http.StatusBadRequest,
	validators.ErrEmptyValue:            http.StatusBadRequest,
	validators.ErrInvalidConfidence:     http.StatusBadRequest,
	validators.ErrInvalidSpanRange:      http.StatusBadRequest,
	validators.ErrEmptyFields:           http.StatusBadRequest,
	validators.ErrEmptyConversationID:   http.StatusBadRequest,
	validators.ErrEmptyPersonID:         http.StatusBadRequest,
	validators.ErrEmptyDisplayName:      http.StatusBadRequest,
	validators.ErrInvalidRelationship:   http.StatusBadRequest,
	validators.ErrEmptyTermLabel:        http.StatusBadRequest,
	validators.ErrEmptyTermValue:        http.StatusBadRequest,
	validators.ErrReplacementLengthSkew: http.StatusBadRequest,

	store.ErrPersonNotFound:     http.StatusNotFound,
	store.ErrVaultEntryNotFound: http.StatusNotFound,
	store.ErrTermNotFound:       http.StatusNotFound,
	store.ErrVaultEntryExists:   http.StatusConflict,
	store.ErrTermAlreadyExists:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
