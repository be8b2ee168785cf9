/*
File    : go-lox/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-lox/objects"
)

func TestScope_BindAndLookUp(t *testing.T) {
	s := NewScope(nil)
	redefined := s.Bind("x", &objects.Number{Value: 10})
	assert.False(t, redefined)

	obj, ok := s.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, &objects.Number{Value: 10}, obj)
}

func TestScope_BindReportsRedefinition(t *testing.T) {
	s := NewScope(nil)
	s.Bind("x", &objects.Number{Value: 1})
	redefined := s.Bind("x", &objects.Number{Value: 2})
	assert.True(t, redefined)

	obj, _ := s.LookUp("x")
	assert.Equal(t, &objects.Number{Value: 2}, obj)
}

func TestScope_LookUpWalksParentChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.String{Value: "global"})
	inner := NewScope(NewScope(global))

	obj, ok := inner.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, "global", obj.ToString())

	_, ok = inner.LookUp("missing")
	assert.False(t, ok)
}

func TestScope_InnerBindingShadowsOuter(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("x", &objects.String{Value: "outer"})
	inner := NewScope(outer)
	inner.Bind("x", &objects.String{Value: "inner"})

	obj, _ := inner.LookUp("x")
	assert.Equal(t, "inner", obj.ToString())
	// the outer binding is untouched
	obj, _ = outer.LookUp("x")
	assert.Equal(t, "outer", obj.ToString())
}

func TestScope_AssignUpdatesDefiningScope(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("x", &objects.Number{Value: 1})
	inner := NewScope(outer)

	ok := inner.Assign("x", &objects.Number{Value: 2})
	require.True(t, ok)

	// the update happened in the outer scope, not in inner
	_, foundLocally := inner.Variables["x"]
	assert.False(t, foundLocally)
	obj, _ := outer.LookUp("x")
	assert.Equal(t, &objects.Number{Value: 2}, obj)
}

func TestScope_AssignDoesNotCreateBindings(t *testing.T) {
	s := NewScope(nil)
	ok := s.Assign("ghost", &objects.Number{Value: 1})
	assert.False(t, ok)
	_, found := s.LookUp("ghost")
	assert.False(t, found)
}

func TestScope_AncestorFollowsExactHops(t *testing.T) {
	global := NewScope(nil)
	mid := NewScope(global)
	leaf := NewScope(mid)

	assert.Equal(t, leaf, leaf.Ancestor(0))
	assert.Equal(t, mid, leaf.Ancestor(1))
	assert.Equal(t, global, leaf.Ancestor(2))
	assert.Nil(t, leaf.Ancestor(5))
}

func TestScope_LookUpAtReadsExactlyThatScope(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.String{Value: "global"})
	mid := NewScope(global)
	mid.Bind("x", &objects.String{Value: "mid"})
	leaf := NewScope(mid)

	obj, ok := leaf.LookUpAt(1, "x")
	require.True(t, ok)
	assert.Equal(t, "mid", obj.ToString())

	obj, ok = leaf.LookUpAt(2, "x")
	require.True(t, ok)
	assert.Equal(t, "global", obj.ToString())

	// no fallback search: distance 0 holds no x
	_, ok = leaf.LookUpAt(0, "x")
	assert.False(t, ok)
}

func TestScope_AssignAtWritesExactlyThatScope(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Number{Value: 1})
	mid := NewScope(global)
	mid.Bind("x", &objects.Number{Value: 10})
	leaf := NewScope(mid)

	ok := leaf.AssignAt(2, "x", &objects.Number{Value: 99})
	require.True(t, ok)

	obj, _ := global.LookUp("x")
	assert.Equal(t, &objects.Number{Value: 99}, obj)
	// the mid binding is untouched
	obj, _ = mid.LookUpAt(0, "x")
	assert.Equal(t, &objects.Number{Value: 10}, obj)

	// no fallback: writing a name absent at that distance fails
	assert.False(t, leaf.AssignAt(0, "x", &objects.Number{Value: 5}))
}

// Two closures capturing the same scope observe each other's mutations;
// the scope chain is shared by reference, not copied.
func TestScope_SharedScopeObservesMutations(t *testing.T) {
	captured := NewScope(nil)
	captured.Bind("count", &objects.Number{Value: 0})

	callA := NewScope(captured)
	callB := NewScope(captured)

	require.True(t, callA.AssignAt(1, "count", &objects.Number{Value: 1}))
	obj, ok := callB.LookUpAt(1, "count")
	require.True(t, ok)
	assert.Equal(t, &objects.Number{Value: 1}, obj)
}
