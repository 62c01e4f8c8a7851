// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when an {id} path segment is neither a
	// positive integer nor a UUID, depending on the route.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrNoCaller is returned when a protected handler runs without the
	// caller stored by the auth middleware.
	ErrNoCaller = errors.New("no authenticated caller in request context")

	ErrRouteNotFound = errors.New("route not found")
)
