// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is given no service
// layer to delegate to.
var errNoServices = errors.New("no services provided to handlers")
