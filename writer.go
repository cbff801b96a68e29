package deflate

import "io"

// Writer buffers everything written to it and, on Close, compresses
// the buffered bytes into a single fixed-Huffman DEFLATE block and
// writes the result to the underlying io.Writer. This mirrors the
// buffer-then-compress shape of Compress while giving callers the
// familiar io.WriteCloser surface.
//
// Writer does not stream: like Compress, it needs the whole input
// before it can emit anything, because the match finder searches
// backward over bytes not yet written. Writes are not flushed to w
// until Close.
type Writer struct {
	w    io.Writer
	data []byte
}

// NewWriter returns a Writer whose compressed output, once Close is
// called, is written to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends p to the buffered input. It always returns
// len(p), nil.
func (w *Writer) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

// Close compresses everything written so far and writes it to the
// underlying io.Writer.
func (w *Writer) Close() error {
	_, err := w.w.Write(Compress(w.data))
	return err
}
