// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Karev

package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no HTTP listen address configured")
)
