package benchmark

import (
	"bytes"
	"sync"
)

// bodyPool reuses buffers for encoding PUT request bodies so the hot loop
// does not allocate a fresh buffer per iteration.
var bodyPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// getBodyBuffer gets an empty buffer from the pool.
func getBodyBuffer() *bytes.Buffer {
	buf := bodyPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBodyBuffer returns a buffer to the pool.
func putBodyBuffer(buf *bytes.Buffer) {
	bodyPool.Put(buf)
}

// pooledBody is a request body backed by a pooled buffer. The buffer is
// released exactly once, when the transport (or the caller, if the request
// never reached it) closes the body.
type pooledBody struct {
	*bytes.Reader
	buf  *bytes.Buffer
	once sync.Once
}

func newPooledBody(buf *bytes.Buffer) *pooledBody {
	return &pooledBody{Reader: bytes.NewReader(buf.Bytes()), buf: buf}
}

func (b *pooledBody) Close() error {
	b.once.Do(func() {
		putBodyBuffer(b.buf)
		b.buf = nil
	})
	return nil
}
