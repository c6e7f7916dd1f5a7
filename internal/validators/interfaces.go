// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound portal requests before they reach the
// services.
//
// A Validator validates a value as a whole or only the named fields of it.
// Failures are [*Error] values whose text can be shown to clients as is.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
