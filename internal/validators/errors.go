// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrMalformedBundle     = errors.New("bundle is not valid json")
	ErrMissingBundleFields = errors.New("bundle is missing required fields")
)
