/*
Package deflate implements the fixed-Huffman variant of the DEFLATE
compressed data format described in RFC 1951.

It emits exactly one final block, block type 01 (fixed Huffman codes).
Stored blocks, dynamic Huffman blocks, multi-block streams, and
decompression are out of scope; see the package-level functions for
what is provided.

For example, to compress a buffer in one call:

	out := deflate.Compress([]byte("Fa-la-la-la-la"))

or to compress while writing to an io.Writer:

	w := deflate.NewWriter(&buf)
	w.Write([]byte("Fa-la-la-la-la"))
	w.Close()
*/
package deflate
