// Package huffman builds, persists, and applies Huffman codes over the byte
// alphabet 0 .. 255.
//
// A Tree is constructed either from a weight table (NewTree) or from a
// persisted code table (Load).  The code table is a flat sequence of line
// pairs, the decimal symbol followed by its path of '0' (left) and '1'
// (right) choices from the root:
//
//     102
//     0
//     99
//     100
//     ...
//
// Tree shape is never stored explicitly; Load rebuilds it purely from the
// paths.  Translate walks the tree against a BitSource to recover symbols.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
