// Package codec turns wire payloads into the generic maps the protocol
// package compiles.
//
// JSON is the game server's format. Captures may carry JSONC comments and
// trailing commas, which are stripped before decoding. Numbers are kept as
// json.Number so integer fields never round-trip through float64.
//
// CBOR is accepted for compact captures. Maps always decode as
// map[string]any.
package codec
