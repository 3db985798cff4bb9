// Package compress frames a byte stream into independently compressed blocks.
//
// Block layout: [uncompressed size u32 LE][stored size u32 LE][payload].
// A stored size of 0 marks a block kept uncompressed because compression did
// not pay off.
package compress
