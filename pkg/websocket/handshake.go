package websocket

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // Required by RFC 6455 §4.2.2, not used for anything security-sensitive.
	"encoding/base64"
	"fmt"
	"strings"
)

// acceptGUID is the fixed magic value RFC 6455 §4.2.2 concatenates
// with the client's Sec-WebSocket-Key before hashing it.
const acceptGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

const secWebSocketKeyHeader = "sec-websocket-key"

// headerTerminator marks the end of an HTTP/1.1 request's header
// block: https://www.rfc-editor.org/rfc/rfc9112#section-2.1.
var headerTerminator = []byte("\r\n\r\n")

// ParseHandshake attempts to parse one HTTP/1.1 upgrade request from
// the front of buf. It recognizes only as much of HTTP/1.1 as this
// engine needs: the request line, header lines, and the blank-line
// terminator; the only header value it extracts is Sec-WebSocket-Key
// (compared case-insensitively), all others are tolerated but unused.
// It does not check Sec-WebSocket-Version, Origin, or subprotocols.
//
// Like [DecodeFrame], this is resumable: if the header block hasn't
// fully arrived yet, it returns ("", false, nil) and leaves buf
// untouched. Once the blank-line terminator is found, the request is
// always consumed from buf — either key is returned with ok=true, or
// [ErrHandshakeMalformed] is returned because no Sec-WebSocket-Key
// header was present.
func ParseHandshake(buf *Buffer) (key string, ok bool, err error) {
	raw := buf.Bytes()

	end := bytes.Index(raw, headerTerminator)
	if end < 0 {
		return "", false, nil // Partial: header block not fully received yet.
	}
	total := end + len(headerTerminator)

	lines := strings.Split(string(raw[:end]), "\r\n")
	if len(lines) < 1 {
		buf.Advance(total)
		return "", false, ErrHandshakeMalformed
	}

	// lines[0] is the request line (e.g. "GET /chat HTTP/1.1"); this
	// engine doesn't validate it, only the header lines that follow.
	for _, line := range lines[1:] {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.ToLower(strings.TrimSpace(name)) == secWebSocketKeyHeader {
			key = strings.TrimSpace(value)
			ok = true
			break
		}
	}

	buf.Advance(total)

	if !ok {
		return "", false, ErrHandshakeMalformed
	}
	return key, true, nil
}

// MakeAccept computes the Sec-WebSocket-Accept response token for a
// client's Sec-WebSocket-Key, per
// https://datatracker.ietf.org/doc/html/rfc6455#section-4.2.2:
// concatenate the key with the fixed GUID, SHA-1 the ASCII bytes, and
// base64-encode the 20-byte digest.
func MakeAccept(key string) string {
	h := sha1.New() //nolint:gosec // Required by RFC 6455 §4.2.2.
	h.Write([]byte(key))
	h.Write([]byte(acceptGUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// WriteHandshakeAccept appends the HTTP/1.1 101 Switching Protocols
// response to buf, per https://datatracker.ietf.org/doc/html/rfc6455#section-4.2.2.
// The response carries no body.
func WriteHandshakeAccept(buf *Buffer, key string) {
	resp := fmt.Sprintf(
		"HTTP/1.1 101 Switching Protocols\r\n"+
			"Upgrade: websocket\r\n"+
			"Connection: Upgrade\r\n"+
			"Sec-WebSocket-Accept: %s\r\n\r\n",
		MakeAccept(key),
	)
	buf.Write([]byte(resp))
}
