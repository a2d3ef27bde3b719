// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Album is the predicate function for album builders.
type Album func(*sql.Selector)

// Photo is the predicate function for photo builders.
type Photo func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
