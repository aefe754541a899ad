// Package memory defines the memory regions the pack protocol reads from and
// writes into.
//
// A [Region] is a caller-owned block of bytes with a fixed capacity. The pack
// protocol never allocates or frees a region; it only reads and writes
// within offsets the caller's cursor supplies, and every access is checked
// against [Region.Size].
//
// Two host implementations are provided:
//
//   - [Heap]: a region that owns a heap-allocated block and can be resized.
//   - [External]: a view over a byte slice allocated elsewhere, for example a
//     transport buffer handed over by another layer.
//
// Accelerator memory is expected to implement [Region] by exposing a
// host-visible mapping of its block.
package memory
