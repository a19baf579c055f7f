// Package shop provides the bookkeeping engine for a small retail
// operation: inventory, purchases, sales and expenses, persisted locally as
// a single human-readable document. It is designed to be local-first and
// forgiving, so that documents written by any earlier generation of the
// software still load.
//
// The core functionalities include:
//   - Schema Migration: upgrading raw, possibly legacy or corrupted
//     documents into the current canonical shape, without ever failing.
//   - Sanitization: defensive healing of malformed collections wherever raw
//     bytes enter the system.
//   - Book Mutations: pure state transitions for every user action
//     (recording purchases and sales, editing and deleting by id, expense
//     and rent upkeep), with inventory cost derived from purchase events.
//   - Import/Export: lossless round-tripping of the whole document with a
//     minimal structural shape check on the way in.
//   - Reporting: profit and loss, on-hand stock and activity projections.
//
// This package serves as the foundational logic for the halfhalf
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package shop
