// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Address is the predicate function for address builders.
type Address func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// MeterReading is the predicate function for meterreading builders.
type MeterReading func(*sql.Selector)

// TimeSession is the predicate function for timesession builders.
type TimeSession func(*sql.Selector)

// UtilityPrice is the predicate function for utilityprice builders.
type UtilityPrice func(*sql.Selector)
