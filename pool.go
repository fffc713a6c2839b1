package tweettext

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Decoding plain text gaps produces a high fluctuation of short-lived
// buffers, one for every gap between entities. To avoid multiple allocation
// of small objects we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

// maxPooledBufferCap is the capacity above which buffers are dropped instead
// of being returned into the pool.
const maxPooledBufferCap = 16 * 1024

const initialBufferCap = 256

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := bytes.NewBuffer(make([]byte, 0, initialBufferCap))
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// BorrowBuffer returns an empty byte buffer from the pool. Clients must hand
// it back with ReturnBuffer after having copied out its contents.
func BorrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		CT().Errorf("buffer pool: cannot borrow buffer: %v", err)
		return bytes.NewBuffer(make([]byte, 0, initialBufferCap))
	}
	buf := o.(*bytes.Buffer)
	buf.Reset()
	return buf
}

// ReturnBuffer clears buf and puts it back into the pool.
// Buffers not obtained from BorrowBuffer are silently dropped.
func ReturnBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if buf.Cap() > maxPooledBufferCap {
		// invalidate oversized buffers; the pool will create a fresh one
		_ = globalBufferPool.opool.InvalidateObject(globalBufferPool.ctx, buf)
		return
	}
	buf.Reset()
	if err := globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf); err != nil {
		CT().Debugf("buffer pool: dropping buffer: %v", err)
	}
}

// PooledBuffers returns the number of buffers currently borrowed from the pool
// and the number of idle buffers.
func PooledBuffers() (active int, idle int) {
	return globalBufferPool.opool.GetNumActive(), globalBufferPool.opool.GetNumIdle()
}
