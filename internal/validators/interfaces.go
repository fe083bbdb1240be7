// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input validation layer shared by the
// services. A Validator encodes the structural rules of one family of
// domain models; services inject one and wrap its sentinel errors in
// their own invalid-input error.
//
// Validation can be scoped to named fields, which create/update flows use
// when part of a model (such as a server-generated ID) is not assigned yet.
package validators

import "context"

// Validator validates arbitrary input values. The optional field names
// restrict validation to a subset of a model's fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
