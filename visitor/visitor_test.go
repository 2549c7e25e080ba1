package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/visitor"
)

// partial implements only OnDiscoverVertex; every other event must stay
// undispatched.
type partial struct {
	discovered []int
}

func (p *partial) OnDiscoverVertex(u core.VertexDesc[int]) {
	p.discovered = append(p.discovered, u.Id())
}

func TestDispatchCallsImplementedEvent(t *testing.T) {
	p := &partial{}
	visitor.Dispatch[visitor.Discoverer[int]](p, func(v visitor.Discoverer[int]) {
		v.OnDiscoverVertex(core.NewVertexDesc(7))
	})
	assert.Equal(t, []int{7}, p.discovered)
}

func TestDispatchSkipsUnimplementedEvent(t *testing.T) {
	p := &partial{}
	visitor.Dispatch[visitor.Finisher[int]](p, func(v visitor.Finisher[int]) {
		t.Fatal("OnFinishVertex is not implemented and must not be dispatched")
	})
	assert.Empty(t, p.discovered)
}

func TestDispatchNilVisitorIsNoOp(t *testing.T) {
	visitor.Dispatch[visitor.Examiner[int]](nil, func(v visitor.Examiner[int]) {
		t.Fatal("nil visitor must not be dispatched")
	})
}
