// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// routeNotFound answers both unknown paths and unsupported methods on known
// paths with the same JSON 404.
//
// Usage:
//
//	router.NotFound(h.routeNotFound)
//	router.MethodNotAllowed(h.routeNotFound)
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
