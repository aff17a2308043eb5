package websocket

// Buffer is the host I/O contract's growable byte queue: an
// append-only buffer the host fills from the socket with [Buffer.Write]
// and presents to [Codec.Decode] / [DecodeFrame] / [ParseHandshake].
// Buffer supports exactly the three operations the codec's resumable
// parsers need: length inspection, indexed read of the unconsumed
// prefix, and consumption (prefix removal) — never random insertion,
// never a rewind.
//
// The zero value is an empty, ready-to-use Buffer.
type Buffer struct {
	data []byte
	off  int
}

// NewBuffer returns a Buffer pre-seeded with b's contents.
func NewBuffer(b []byte) *Buffer {
	buf := &Buffer{}
	buf.Write(b)
	return buf
}

// Write appends p to the buffer. It never fails and never consumes
// unread data.
func (b *Buffer) Write(p []byte) {
	b.data = append(b.data, p...)
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return len(b.data) - b.off
}

// Bytes returns the unconsumed prefix of the buffer, without consuming
// it. The returned slice aliases the buffer's backing array and is
// only valid until the next [Buffer.Write], [Buffer.Advance], or
// [Buffer.Take] call.
func (b *Buffer) Bytes() []byte {
	return b.data[b.off:]
}

// Advance discards the first n unconsumed bytes without copying them
// out. It panics if n exceeds Len(), which would indicate a codec bug
// (callers must only advance past bytes they have already inspected).
func (b *Buffer) Advance(n int) {
	if n > b.Len() {
		panic("websocket: Buffer.Advance past end of buffer")
	}
	b.off += n
	b.compact()
}

// Take copies out and consumes the first n unconsumed bytes, returning
// an owned slice that doesn't alias the buffer's backing array. It
// panics under the same condition as [Buffer.Advance].
func (b *Buffer) Take(n int) []byte {
	if n > b.Len() {
		panic("websocket: Buffer.Take past end of buffer")
	}
	out := make([]byte, n)
	copy(out, b.data[b.off:b.off+n])
	b.off += n
	b.compact()
	return out
}

// compact reclaims the consumed prefix once it's large enough to be
// worth a copy, so a long-lived connection's buffer doesn't grow
// unboundedly just because bytes keep arriving.
func (b *Buffer) compact() {
	if b.off == len(b.data) {
		b.data = b.data[:0]
		b.off = 0
		return
	}
	if b.off > 4096 && b.off*2 > len(b.data) {
		n := copy(b.data, b.data[b.off:])
		b.data = b.data[:n]
		b.off = 0
	}
}
