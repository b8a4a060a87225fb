// Package bitio reads and writes individual bits, most significant bit of
// each byte first.
//
// Reader implements huffman.BitSource and Writer implements huffman.BitSink.
// Because a byte stream cannot express a bit count that is not a multiple of
// eight, Reader is always bounded by an explicit number of bits; the
// compressed file format used by the huffcode command stores that number in
// an 8-byte big-endian header (see ReadHeader and WriteHeader).
package bitio
