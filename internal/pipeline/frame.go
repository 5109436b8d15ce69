package pipeline

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Records cross the byte channel as (length, bytes) pairs: a 2-byte
// big-endian length prefix followed by the payload. Length delimiting
// means a short record never exposes stale bytes from a longer
// predecessor in the reused line buffer.

const frameHeaderSize = 2

// WriteFrame writes one record to w.
func WriteFrame(w io.Writer, p []byte) error {
	if len(p) > MaxLineCap {
		return fmt.Errorf("record of %d bytes exceeds frame limit %d", len(p), MaxLineCap)
	}

	var hdr [frameHeaderSize]byte
	binary.BigEndian.PutUint16(hdr[:], uint16(len(p)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(p)
	return err
}

// ReadFrame reads one record into buf and returns its length.
func ReadFrame(r io.Reader, buf []byte) (int, error) {
	var hdr [frameHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, err
	}

	n := int(binary.BigEndian.Uint16(hdr[:]))
	if n > len(buf) {
		return 0, fmt.Errorf("frame of %d bytes exceeds buffer of %d", n, len(buf))
	}
	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		return 0, err
	}
	return n, nil
}
