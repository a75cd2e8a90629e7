package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds the buffers the CLI renders reports into before writing them out in one call.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// GetBuffer returns an empty buffer from BufferPool.
func GetBuffer() *bytes.Buffer {
	buf := BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to BufferPool.
func PutBuffer(buf *bytes.Buffer) {
	BufferPool.Put(buf)
}
