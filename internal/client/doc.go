// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive command-line client runtime.
//
// It wires the line-based command shell, client services, and the local
// cache into a single process lifecycle. Desk names and item contents are
// encrypted client-side while the unlock session holds a master key; the
// server only ever sees "ENC:"-prefixed blobs.
package client
