// Package beer provides a heuristic extraction engine that turns
// loosely-structured venue menu pages into a normalized catalog of
// beer records. It detects tap-group sections, segments individual
// entries, parses free-form stat lines (ABV, IBU, producer), and
// reconciles fields across a secondary enrichment source.
//
// This package contains domain types, interfaces, and pure parsing
// helpers following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, fs/), with the extraction state
// machine in menu/ and run orchestration in scrape/.
package beer
