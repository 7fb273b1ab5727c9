// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// DispatchRecord is the predicate function for dispatchrecord builders.
type DispatchRecord func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
