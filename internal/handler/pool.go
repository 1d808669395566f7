package handler

import (
	"bytes"
	"sync"
)

// maxPooledBufferBytes caps the capacity of buffers returned to the pool.
// Response bodies here are small JSON documents; a buffer grown by an
// unusually large transaction history would otherwise pin that memory.
const maxPooledBufferBytes = 64 * 1024

// bufferPool reuses JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool, dropping buffers
// that grew past the cap
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferBytes {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
