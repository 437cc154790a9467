// Package types defines the Table interface, the table state model (filters,
// sort, pagination), rows, events, configuration, and the standard errors for
// the smarttable engine.
//
// A Table turns a source collection into a published view. Every mutating
// operation (SortBy, ApplyFilter, Slice, a source change) updates the
// TableState and then runs the pipe: filters, then sort, then pagination.
package types
