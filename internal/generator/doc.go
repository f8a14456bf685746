// Package generator produces batches of synthetic customer PII records.
//
// A Record holds five fixed string fields (full name, address, phone number,
// email address, feedback sentence) sampled independently from gofakeit.
// Addresses are normalized to a single line. The package also provides the
// size heuristic that converts a target output size into a record count.
package generator
