// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const bundleSchemaURL = "mem://todo-client/export-bundle.json"

// bundleSchema accepts the todos collection either as a list or as the
// id-keyed object the server persists.
const bundleSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["todos", "next_id"],
	"properties": {
		"todos": {"type": ["array", "object"]},
		"next_id": {"type": "integer", "minimum": 1}
	}
}`

// BundleValidator checks that raw bytes form an import bundle.
type BundleValidator struct {
	schema *jsonschema.Schema
}

// NewBundleValidator compiles the bundle schema.
func NewBundleValidator() (Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	if err := compiler.AddResource(bundleSchemaURL, strings.NewReader(bundleSchema)); err != nil {
		return nil, fmt.Errorf("add bundle schema: %w", err)
	}

	schema, err := compiler.Compile(bundleSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile bundle schema: %w", err)
	}

	return &BundleValidator{schema: schema}, nil
}

// Validate accepts []byte or json.RawMessage. Unparseable input yields
// [ErrMalformedBundle]; any schema violation yields [ErrMissingBundleFields].
func (v *BundleValidator) Validate(_ context.Context, obj any, _ ...string) error {
	var raw []byte
	switch value := obj.(type) {
	case []byte:
		raw = value
	case json.RawMessage:
		raw = value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var doc any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBundle, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data after bundle", ErrMalformedBundle)
	}

	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingBundleFields, schemaErrorDetail(err))
	}

	return nil
}

// schemaErrorDetail flattens the leaf causes of a schema validation error.
func schemaErrorDetail(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var details []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "/"
			}
			details = append(details, location+": "+e.Message)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)

	return strings.Join(details, "; ")
}
