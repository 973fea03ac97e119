// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/metrics"
	"github.com/rvanwijk/pii-guard/internal/mock"
	"github.com/rvanwijk/pii-guard/internal/service"
	"github.com/rvanwijk/pii-guard/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices bundles the gomock service mocks behind a Handler so each
// test can set expectations on exactly the service its endpoint touches.
type testServices struct {
	pipeline *mock.MockPipelineService
	entities *mock.MockEntityService
	vault    *mock.MockVaultService
	terms    *mock.MockTermService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := &testServices{
		pipeline: mock.NewMockPipelineService(ctrl),
		entities: mock.NewMockEntityService(ctrl),
		vault:    mock.NewMockVaultService(ctrl),
		terms:    mock.NewMockTermService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		Pipeline: svcs.pipeline,
		Entities: svcs.entities,
		Vault:    svcs.vault,
		Terms:    svcs.terms,
		AppInfo:  svcs.appInfo,
	}, metrics.New(), models.NewAppBuildInfo("v0.3.0", "2026-08-20", "abc1234"), logger.Nop())

	return h, svcs
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeBody deserialises the recorded response body into dst.
func decodeBody(t *testing.T, data []byte, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, dst))
}

// withURLParam injects a chi route parameter so handler methods can be
// called directly, without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	h, _ := newTestHandler(t)

	require.NotNil(t, h)
	require.NotNil(t, h.services)
	require.NotNil(t, h.metrics)
	require.Equal(t, "v0.3.0", h.build.BuildVersion())
}
