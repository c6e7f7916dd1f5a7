// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package artifact holds the pure transformations that turn upstream config
// bodies into downloadable files: OpenVPN credential injection, the iOS
// configuration profile wrapper, and file naming.
//
// Nothing here performs I/O, so every function is safe for concurrent use.
package artifact
