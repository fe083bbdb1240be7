// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by Run when the server aggregate holds
// nothing to start.
var errNoServersAreCreated = errors.New("no servers are created")
