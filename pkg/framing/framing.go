// Package framing implements the byte-pipe transport used when the
// renderer sits behind a host boundary: each string travels as a
// 4-byte little-endian byte length followed by the raw UTF-8 bytes.
// The renderer itself stays ignorant of this convention; it only ever
// sees a string in and a string out.
package framing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxFrameSize caps a single frame. A length prefix above this is
// treated as stream corruption rather than an allocation request.
const MaxFrameSize = 64 << 20

// ErrFrameTooLarge is returned when a length prefix exceeds MaxFrameSize.
var ErrFrameTooLarge = errors.New("framing: frame exceeds maximum size")

// WriteString writes s as one length-prefixed frame.
func WriteString(w io.Writer, s string) error {
	if len(s) > MaxFrameSize {
		return ErrFrameTooLarge
	}
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(s)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write frame body: %w", err)
	}
	return nil
}

// ReadString reads one length-prefixed frame. It returns io.EOF when
// the stream ends cleanly before a header, and io.ErrUnexpectedEOF
// when it ends mid-frame.
func ReadString(r io.Reader) (string, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read frame header: %w", err)
	}
	n := binary.LittleEndian.Uint32(hdr[:])
	if n > MaxFrameSize {
		return "", ErrFrameTooLarge
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("read frame body: %w", err)
	}
	return string(buf), nil
}
