package syllable

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/syllabreak/grapheme"
)

// Syllabification of a word needs a couple of short-lived buffers.
// To avoid allocating them over and over again for every word of a text,
// we will pool them.
type scratch struct {
	tz         grapheme.Tokenizer
	units      grapheme.Units
	nuclei     []int
	boundaries []int
	planner    planner
	out        strings.Builder
	pooled     bool // borrowed from globalScratchPool
}

type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns a cleared scratch object. Clients have to call
// release when done.
func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow scratch buffers: %v", err)
		return &scratch{}
	}
	s := o.(*scratch)
	s.pooled = true
	return s
}

// release clears the scratch object and puts it back into the pool, if it
// has been borrowed from there.
func (s *scratch) release() {
	for i := range s.units {
		s.units[i] = grapheme.Unit{} // do not hold on to words
	}
	s.units = s.units[:0]
	s.nuclei = s.nuclei[:0]
	s.boundaries = s.boundaries[:0]
	s.planner.units = nil
	s.planner.rule = nil
	s.out.Reset()
	if !s.pooled {
		return
	}
	if err := globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s); err != nil {
		CT().Errorf("cannot return scratch buffers: %v", err)
	}
}
