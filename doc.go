// Package savemoney provides the core types and operations of a
// local-first personal finance tracker. All data stays on the user's
// machine in a human-readable snapshot the user fully controls.
//
// The core functionalities include:
//   - Ledger Management: Recording, editing and deleting income and
//     expense transactions in an insertion-ordered record, with
//     validation of amounts, descriptions and timestamps.
//   - Periodic Reports: Aggregating transactions over day, week, month
//     and year ranges, with month-anchored weeks and change indicators
//     against the previous period.
//   - Data Persistence: Snapshotting the ledger to a JSON file after
//     every mutation, falling back to a built-in seed ledger when no
//     usable snapshot exists, plus backup export and restore import.
//   - Preferences: Display settings (dark, light and clock-driven auto
//     variants), language selection and an optional access PIN.
//
// This package serves as the foundational logic for the `smy`
// command-line tool.
package savemoney
