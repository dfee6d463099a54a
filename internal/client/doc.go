// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It picks the contact backend by mode (a local SQLite store or the remote
// contact server) and runs the terminal form on top of it.
package client
