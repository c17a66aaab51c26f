// Package protocol owns the game-message value layer.
//
// Ownership boundary:
// - agent, species and utterance-kind primitives
// - field schema and typed field extraction from raw messages
// - judge and utterance value objects and their compile entry points
//
// Raw messages arrive already parsed into map[string]any by a codec. The
// compile functions copy primitive values out of the map and never retain it.
package protocol
