// Package pgsql holds Postgres expressions and error checks shared by the table packages.
package pgsql

import (
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
)

const foreignKeyViolation = "23503"

// AnyUUID renders `ANY($1::uuid[])` for use as the right side of an EQ.
func AnyUUID(ids []uuid.UUID) bob.Expression {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return psql.Raw("ANY(?::uuid[])", pq.Array(strs))
}

// IsForeignKeyViolation reports whether err carries Postgres error 23503.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
