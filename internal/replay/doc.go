// Package replay routes captured game messages to the right compile entry
// point.
//
// A capture is a stream of records:
//
//	{"channel": "talk", "message": {"day": 1, "agent": 2, "idx": 0, "text": "Over", "turn": 0}}
//
// The channel decides which value object a message becomes. The message
// payload itself never selects the variant.
package replay
