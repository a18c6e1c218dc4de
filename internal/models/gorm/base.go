package gorm

import (
	"github.com/google/uuid"
)

// newID fills an empty primary key before insert. Ids are random UUIDs so the
// same models work on Postgres and SQLite without a database default.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// Models lists every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&Aircraft{},
		&Location{},
		&Airport{},
		&Flight{},
	}
}

