// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ExportBundle is the full-collection document produced by the export
// endpoint and accepted by the import endpoint.
//
// Todos is kept as raw JSON: the server writes it either as an array or as an
// object keyed by id, and the client forwards import payloads unchanged.
type ExportBundle struct {
	Todos  json.RawMessage `json:"todos"`
	NextID int64           `json:"next_id"`
}

// Count returns the number of todos held by the bundle regardless of whether
// they are encoded as an array or an id-keyed object.
func (b ExportBundle) Count() int {
	var list []json.RawMessage
	if err := json.Unmarshal(b.Todos, &list); err == nil {
		return len(list)
	}

	var byID map[string]json.RawMessage
	if err := json.Unmarshal(b.Todos, &byID); err == nil {
		return len(byID)
	}

	return 0
}
