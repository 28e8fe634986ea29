// Package output provides deterministic JSON encoding for verdict results.
//
// Identical comparisons must produce byte-identical CLI output so results
// can be diffed, cached by content, and snapshot-tested without false
// positives. DeterministicEncode guarantees:
//
//  1. Stable key ordering: object keys are sorted alphabetically
//  2. Float formatting: rounded to max 6 decimal places, no trailing zeros
//  3. No HTML escaping
//
// Time-varying fields (attempt durations, trace IDs) are legitimate
// nondeterminism; StripVolatile removes them for snapshot comparison in
// tests.
package output
