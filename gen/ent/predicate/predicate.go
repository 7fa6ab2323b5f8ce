// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)
