// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilListener   = errors.New("listener is nil")
	errNoHTTPHandler = errors.New("no HTTP handler is created")
)
