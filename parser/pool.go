package parser

import (
	"context"

	"github.com/emirpasic/gods/lists/arraylist"
	pool "github.com/jolestar/go-commons-pool"
)

// Tree nodes are short-lived objects: one per nested quotation, discarded
// when the conversion ends. To avoid multiple allocation of small objects
// we will pool them.
type treePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTreePool *treePool

func init() {
	globalTreePool = &treePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Tree{stems: arraylist.New()}, nil
		})
	globalTreePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTreePool.opool = pool.NewObjectPool(globalTreePool.ctx, factory, config)
}

// borrowTree returns a node pre-filled with its parent and opening mark.
// A nil parent and opening make a root.
func borrowTree(parent *Tree, opening *Token) *Tree {
	o, _ := globalTreePool.opool.BorrowObject(globalTreePool.ctx)
	t := o.(*Tree)
	t.parent = parent
	t.opening = opening
	t.closing = nil
	return t
}

// Clears the node and puts it back into the pool.
func (t *Tree) releaseIntoPool() {
	t.parent = nil
	t.opening = nil
	t.closing = nil
	t.stems.Clear()
	_ = globalTreePool.opool.ReturnObject(globalTreePool.ctx, t)
}
