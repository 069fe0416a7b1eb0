// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It picks the backend (in-process cipher core or a remote cipher server),
// starts the background jobs that belong to it and runs the terminal UI.
package client
