// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
)

// ─────────────────────────────────────────────
// ensureLoopback
// ─────────────────────────────────────────────

func TestEnsureLoopback(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{name: "ipv4 loopback", address: "127.0.0.1:8721"},
		{name: "localhost", address: "localhost:8721"},
		{name: "ipv6 loopback", address: "[::1]:8721"},
		{name: "all interfaces", address: "0.0.0.0:8721", wantErr: errNotLoopback},
		{name: "empty host binds everything", address: ":8721", wantErr: errNotLoopback},
		{name: "lan address", address: "192.168.1.10:8721", wantErr: errNotLoopback},
		{name: "hostname is not resolved", address: "example.com:8721", wantErr: errNotLoopback},
		{name: "missing port", address: "127.0.0.1", wantErr: errInvalidAddress},
		{name: "garbage", address: "not an address", wantErr: errInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureLoopback(tt.address)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_AcceptsLoopback(t *testing.T) {
	s, err := NewServer(http.NewServeMux(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewServer_RefusesNonLoopback(t *testing.T) {
	s, err := NewServer(http.NewServeMux(), config.Server{HTTPAddress: "0.0.0.0:8721"}, logger.Nop())

	require.ErrorIs(t, err, errNotLoopback)
	assert.Nil(t, s)
}

// ─────────────────────────────────────────────
// httpServer lifecycle
// ─────────────────────────────────────────────

// TestHTTPServer_RunServer_PortTaken verifies that a failed bind surfaces as
// an error instead of being swallowed.
func TestHTTPServer_RunServer_PortTaken(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())

	err = srv.RunServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}

// TestHTTPServer_GracefulShutdownIsNotAnError starts a real listener, waits
// until it accepts connections, shuts it down, and expects a clean exit.
func TestHTTPServer_GracefulShutdownIsNotAnError(t *testing.T) {
	// Reserve a free port, then hand it to the server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: addr}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- srv.RunServer() }()

	require.Eventually(t, func() bool {
		conn, dialErr := net.Dial("tcp", addr)
		if dialErr != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond, "server never came up")

	srv.Shutdown()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
