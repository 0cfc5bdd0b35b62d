// Package httpapi exposes the generator over a small JSON REST surface.
//
// Every endpoint responds with {"data": [...]} on success or
// {"error": "..."} on failure, and honors ?count= (1 to 100, default 1)
// for drawing several values in one request. The generator itself is not
// safe for concurrent use, so the handler layer serializes draws behind a
// mutex; everything outside the draw runs concurrently as usual.
package httpapi
