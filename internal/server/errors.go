// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package server

import "errors"

var (
	// errInvalidAddress is returned by NewServer when the configured
	// address is not a valid "host:port" pair.
	errInvalidAddress = errors.New("invalid server address")

	// errNotLoopback is returned by NewServer when the configured address
	// would make the agent reachable from other machines. The agent serves
	// the desktop shell on the same machine, nothing else.
	errNotLoopback = errors.New("refusing to bind non-loopback address")
)
