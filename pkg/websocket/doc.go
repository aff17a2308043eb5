// Package websocket is a server-role protocol engine for the WebSocket
// protocol (RFC 6455).
//
// It owns no socket, no thread, and no event loop. It turns a raw,
// ordered byte stream from a client into a sequence of typed
// application events ([InboundEvent]), and serializes outbound
// application messages ([OutboundMessage]) back into bytes. The host
// (an async runtime, a TCP acceptor, anything that can hand it a
// growing []byte) drives it by repeatedly feeding bytes in and calling
// [Codec.Decode] until it returns a nil event, and by calling
// [Codec.Encode] whenever the application has something to send.
//
// How does this package optimize for embeddability in an arbitrary
// I/O layer?
//  1. The codec never performs I/O and never blocks; [Codec.Decode]
//     and [Codec.Encode] operate purely over in-memory buffers.
//  2. The codec is not safe for concurrent use by multiple goroutines;
//     one [Codec] belongs to exactly one connection, driven by at most
//     one goroutine at a time.
//  3. Frame payloads are copied out of the input buffer, not aliased,
//     so the host is free to reuse or discard its buffer immediately
//     after a [Codec.Decode] call returns.
//
// Note A: this package plays the server role only. It does not mask
// outbound frames by default and does not initiate a handshake.
//
// Note B: WebSocket [extensions] (including permessage-deflate),
// [subprotocols], and continuation-frame reassembly are not handled
// here; reassembly and UTF-8 enforcement of text payloads are left to
// the application, per RFC 6455 §5.4 and §8.1.
//
// [extensions]: https://www.iana.org/assignments/websocket/websocket.xhtml#extension-name
// [subprotocols]: https://www.iana.org/assignments/websocket/websocket.xhtml#subprotocol-name
package websocket
