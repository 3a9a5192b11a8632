/*
Package server implements msgpack IPC for chord spelling lookups.

The server reads lookup requests from stdin and streams responses to
stdout using binary msgpack encoding. One job runs at a time; a newer
request supersedes whatever is running or queued, so the host UI can
fire a request per keystroke and only ever pay for the latest one.

# IPC

A lookup request names a job id, a layout version and the target word:

	{"id": 7, "v": "v1", "t": "tian", "m": 50}

`m` optionally caps how many spellings the job may emit.
The target is used exactly as sent; trimming and case folding are the
caller's job.

While a job runs, spellings stream back in chunks:

	{"ev": "chunk", "id": 7, "s": ["TIAN", "TI AN"], "k": [[["T","IA","-N",""]], ...]}

`s` and `k` are index-aligned: k[i] is the stroke sequence spelling s[i].
Each stroke is the four raw chord identifiers (initial, vowel, final,
suffix) of one chord.

Every job that is not superseded ends with exactly one terminal message,
either a summary:

	{"ev": "done", "id": 7, "n": 42}

or a failure:

	{"ev": "error", "id": 7, "e": "layout \"v9\": file not found"}

A superseded job simply goes silent; its already-emitted chunks are a
valid prefix of the full run. Zero spellings is not an error: the job
ends with an `n` of 0.

# Supersession

Jobs yield between chunks, and at every chunk boundary the running job
checks whether a newer request has arrived. At most one request is
queued; a third request replaces the queued one. There is no explicit
cancel: sending a new request is the only way to stop the current job.
*/
package server

import "github.com/Aquaduckd/pinchordlookup/pkg/spell"

// Response kind tags.
const (
	KindChunk = "chunk"
	KindDone  = "done"
	KindError = "error"
)

// LookupRequest - one spelling lookup job
type LookupRequest struct {
	ID         int64  `msgpack:"id"`
	Version    string `msgpack:"v"`
	Target     string `msgpack:"t"`
	MaxEntries int    `msgpack:"m,omitempty"`
}

// ChunkResponse - one batch of discovered spellings
type ChunkResponse struct {
	Kind      string           `msgpack:"ev"`
	ID        int64            `msgpack:"id"`
	Spellings []string         `msgpack:"s"`
	Strokes   [][]spell.Stroke `msgpack:"k"`
}

// DoneResponse - terminal success, with the total spellings emitted
type DoneResponse struct {
	Kind  string `msgpack:"ev"`
	ID    int64  `msgpack:"id"`
	Total int    `msgpack:"n"`
}

// ErrorResponse - terminal failure for one job
type ErrorResponse struct {
	Kind  string `msgpack:"ev"`
	ID    int64  `msgpack:"id"`
	Error string `msgpack:"e"`
}

// ReadyResponse - emitted once when the server starts listening
type ReadyResponse struct {
	Status string `msgpack:"status"`
}
