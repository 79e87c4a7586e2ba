// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "settings"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSettingQuery(name string) (string, []any, error) {
	query, args, err := sqlite.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSettingQuery(name, value string) (string, []any, error) {
	query, args, err := sqlite.
		Insert(settingsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSettingQuery(name string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(settingsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
