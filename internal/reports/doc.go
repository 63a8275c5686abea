// Package reports derives the trial balance and the financial statements
// from a ledger snapshot.
//
// Every builder is a pure function of its inputs and is meant to be called
// again after each ledger change; nothing is cached. When the input ledger
// or trial balance is empty the builders return ErrNoData instead of a
// zero-filled report.
package reports

import "errors"

// ErrNoData is returned when a report has no ledger activity to work from.
var ErrNoData = errors.New("no data available")
