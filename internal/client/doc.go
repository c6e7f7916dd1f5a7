// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It binds the terminal UI to a process lifecycle that ends on user quit or
// on SIGINT/SIGTERM.
package client
