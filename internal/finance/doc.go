// Package finance holds the pure calculations behind the fund views:
// APR to APY compounding, percentage changes, NAV deltas, currency
// selection over multi-currency snapshots and token balance formatting.
//
// Every function treats missing or zero inputs as "no data" and returns
// zero instead of an error or a non-finite number.
package finance
