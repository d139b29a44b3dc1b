// Package resplit re-splits an arbitrarily chunked byte stream into
// delimiter-terminated frames. The split is invariant to how the source was
// chunked: a frame may arrive spread over many reads, and a delimiter may
// land exactly on a chunk boundary.
package resplit

import (
	"bytes"
	"io"
)

// Reader yields delimiter-free frames from an underlying byte stream.
//
// A trailing frame with no final delimiter is treated as truncation and
// reported as io.ErrUnexpectedEOF rather than emitted: silently delivering a
// cut-off record would hand the caller corrupt data.
type Reader struct {
	src   io.Reader
	delim byte

	// buf holds bytes not yet emitted; scanned marks how far buf has
	// already been searched for the delimiter.
	buf     []byte
	scanned int

	chunk []byte
	err   error
}

// NewReader returns a Reader splitting src on delim.
func NewReader(src io.Reader, delim byte) *Reader {
	return &Reader{
		src:   src,
		delim: delim,
		chunk: make([]byte, 4096),
	}
}

// ReadFrame returns the next frame, excluding its delimiter. It returns
// io.EOF when the source is exhausted with nothing buffered, and
// io.ErrUnexpectedEOF when the source ends mid-frame. The returned slice is
// only valid until the next call.
func (r *Reader) ReadFrame() ([]byte, error) {
	for {
		if frame, ok := r.next(); ok {
			return frame, nil
		}
		if r.err != nil {
			if r.err == io.EOF && len(r.buf) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, r.err
		}

		n, err := r.src.Read(r.chunk)
		if n > 0 {
			r.buf = append(r.buf, r.chunk[:n]...)
		}
		if err != nil {
			r.err = err
		}
	}
}

// next scans the buffered bytes from the last scan position and, if a
// delimiter is present, removes and returns the frame before it.
func (r *Reader) next() ([]byte, bool) {
	i := bytes.IndexByte(r.buf[r.scanned:], r.delim)
	if i < 0 {
		r.scanned = len(r.buf)
		return nil, false
	}
	end := r.scanned + i
	frame := r.buf[:end]
	r.buf = r.buf[end+1:]
	r.scanned = 0
	return frame, true
}
