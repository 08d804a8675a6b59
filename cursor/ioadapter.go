package cursor

import "io"

type ioReader struct {
	r Reader
}

// NewIOReader exposes r as an io.Reader.
//
// Each Read copies at most one chunk, advances r past the copied bytes and returns
// io.EOF once r is drained. Nothing is buffered.
func NewIOReader(r Reader) io.Reader {
	return &ioReader{r: r}
}

func (a *ioReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	chunk := a.r.Chunk()
	if len(chunk) == 0 {
		return 0, io.EOF
	}

	n := copy(p, chunk)
	if err := a.r.Advance(n); err != nil {
		return 0, err
	}

	return n, nil
}

type ioWriter struct {
	w Writer
}

// NewIOWriter exposes w as an io.Writer.
//
// Each Write stores as much of p as fits. A truncated write reports the stored count
// together with io.ErrShortWrite.
func NewIOWriter(w Writer) io.Writer {
	return &ioWriter{w: w}
}

func (a *ioWriter) Write(p []byte) (int, error) {
	n := min(len(p), a.w.RemainingMut())
	if err := a.w.WriteFrom(p[:n]); err != nil {
		return 0, err
	}

	if n < len(p) {
		return n, io.ErrShortWrite
	}

	return n, nil
}
