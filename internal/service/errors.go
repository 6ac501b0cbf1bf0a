package service

import "errors"

var (
	// ErrUnknownTable is returned when an aggregation targets a table the
	// scan aggregator cannot enumerate.
	ErrUnknownTable = errors.New("unknown table")
)
