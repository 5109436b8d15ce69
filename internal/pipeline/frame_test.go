package pipeline

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundtrip(t *testing.T) {
	var channel bytes.Buffer

	records := [][]byte{
		[]byte("first line\n"),
		[]byte("second\n"),
		[]byte("no terminator"),
	}
	for _, rec := range records {
		require.NoError(t, WriteFrame(&channel, rec))
	}

	buf := make([]byte, 255)
	for _, want := range records {
		n, err := ReadFrame(&channel, buf)
		require.NoError(t, err)
		assert.Equal(t, want, buf[:n])
	}

	_, err := ReadFrame(&channel, buf)
	assert.ErrorIs(t, err, io.EOF)
}

// A short record after a long one must not expose stale buffer bytes.
func TestFrameNoResidue(t *testing.T) {
	var channel bytes.Buffer

	long := bytes.Repeat([]byte("x"), 200)
	require.NoError(t, WriteFrame(&channel, long))
	require.NoError(t, WriteFrame(&channel, []byte("hi\n")))

	buf := make([]byte, 255)

	n, err := ReadFrame(&channel, buf)
	require.NoError(t, err)
	require.Equal(t, 200, n)

	n, err = ReadFrame(&channel, buf)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(buf[:n]))
	// Stale bytes are still in the buffer past n, and that is fine
	assert.Equal(t, byte('x'), buf[3])
}

func TestFrameTooLargeForBuffer(t *testing.T) {
	var channel bytes.Buffer
	require.NoError(t, WriteFrame(&channel, bytes.Repeat([]byte("y"), 100)))

	_, err := ReadFrame(&channel, make([]byte, 50))
	assert.Error(t, err)
}

func TestWriteFrameOverLimit(t *testing.T) {
	err := WriteFrame(io.Discard, make([]byte, MaxLineCap+1))
	assert.Error(t, err)
}

func TestFrameTruncatedPayload(t *testing.T) {
	var channel bytes.Buffer
	require.NoError(t, WriteFrame(&channel, []byte("complete\n")))

	// Drop the last byte of the payload
	raw := channel.Bytes()[:channel.Len()-1]

	_, err := ReadFrame(bytes.NewReader(raw), make([]byte, 255))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
