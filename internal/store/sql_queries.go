// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-validation/models"
)

const contactsTable = "contacts"

var contactColumns = []string{"id", "name", "telephone", "created_at"}

func buildSaveContact(b sq.StatementBuilderType, c models.Contact) (string, []any, error) {
	return b.Insert(contactsTable).
		Columns(contactColumns...).
		Values(c.ID, c.Name, c.Telephone, c.CreatedAt).
		ToSql()
}

func buildListContacts(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	q := b.Select(contactColumns...).
		From(contactsTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}

func buildFindByTelephone(b sq.StatementBuilderType, telephone string) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"telephone": telephone}).
		ToSql()
}
