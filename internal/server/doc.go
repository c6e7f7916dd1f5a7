// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the portal's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, background workers, signal handling, and graceful shutdown of all
// enabled transports.
package server
