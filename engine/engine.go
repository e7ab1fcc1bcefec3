// Package engine is a minimal host object model exercised end to end by the
// gc package: a handful of Collectable types, each standing in for one of
// the "actors, thinkers, menus, sound nodes, interpolators, script-visible
// values" a real host would manage, plus the per-level and global root
// owners that register with a Collector. None of it does anything beyond
// holding managed references; it exists to give every root-enumeration and
// bulk-marking path a real caller.
package engine

import "github.com/zdoom-gc/tricolor/gc"

// Actor is the most common managed type a level holds: a thing with a
// target, a tracer, and an inventory chain.
type Actor struct {
	gc.ObjHeader
	Name     string
	Target   gc.Collectable
	Tracer   gc.Collectable
	Inventory gc.Collectable // head of a singly linked chain via Actor.Next
	Next     gc.Collectable
}

func NewActor(name string) *Actor { return &Actor{Name: name} }

func (a *Actor) Header() *gc.ObjHeader { return &a.ObjHeader }
func (a *Actor) Size() uintptr         { return 96 }
func (a *Actor) Destroy()              {}
func (a *Actor) PropagateMark(c *gc.Collector) uintptr {
	c.Mark(&a.Target)
	c.Mark(&a.Tracer)
	c.Mark(&a.Inventory)
	c.Mark(&a.Next)
	return a.Size()
}

// Thinker is ticked once per frame by a ThinkerList and references its
// owner actor plus the next thinker in think order.
type Thinker struct {
	gc.ObjHeader
	Owner gc.Collectable
	Next  gc.Collectable
	Prev  gc.Collectable
}

func NewThinker() *Thinker { return &Thinker{} }

func (t *Thinker) Header() *gc.ObjHeader { return &t.ObjHeader }
func (t *Thinker) Size() uintptr         { return 48 }
func (t *Thinker) Destroy()              {}
func (t *Thinker) PropagateMark(c *gc.Collector) uintptr {
	c.Mark(&t.Owner)
	c.Mark(&t.Next)
	c.Mark(&t.Prev)
	return t.Size()
}

// Menu is a UI root: the active menu, if any, holds a reference chain to
// its parent menus and whatever item is currently focused.
type Menu struct {
	gc.ObjHeader
	Parent  gc.Collectable
	Focused gc.Collectable
}

func NewMenu() *Menu { return &Menu{} }

func (m *Menu) Header() *gc.ObjHeader { return &m.ObjHeader }
func (m *Menu) Size() uintptr         { return 64 }
func (m *Menu) Destroy()              {}
func (m *Menu) PropagateMark(c *gc.Collector) uintptr {
	c.Mark(&m.Parent)
	c.Mark(&m.Focused)
	return m.Size()
}

// SoundNode is one entry in a sound sequence's linked playback state.
type SoundNode struct {
	gc.ObjHeader
	Source gc.Collectable
	Next   gc.Collectable
}

func NewSoundNode() *SoundNode { return &SoundNode{} }

func (s *SoundNode) Header() *gc.ObjHeader { return &s.ObjHeader }
func (s *SoundNode) Size() uintptr         { return 40 }
func (s *SoundNode) Destroy()              {}
func (s *SoundNode) PropagateMark(c *gc.Collector) uintptr {
	c.Mark(&s.Source)
	c.Mark(&s.Next)
	return s.Size()
}

// Interpolator smooths a value (camera position, light level, ...) owned
// by a single actor.
type Interpolator struct {
	gc.ObjHeader
	Owner gc.Collectable
}

func NewInterpolator() *Interpolator { return &Interpolator{} }

func (p *Interpolator) Header() *gc.ObjHeader { return &p.ObjHeader }
func (p *Interpolator) Size() uintptr         { return 32 }
func (p *Interpolator) Destroy()              {}
func (p *Interpolator) PropagateMark(c *gc.Collector) uintptr {
	c.Mark(&p.Owner)
	return p.Size()
}

// ScriptValue is a script-visible boxed reference, the kind of value a
// scripting VM's stack or global table would hold onto.
type ScriptValue struct {
	gc.ObjHeader
	Ref gc.Collectable
}

func NewScriptValue() *ScriptValue { return &ScriptValue{} }

func (v *ScriptValue) Header() *gc.ObjHeader { return &v.ObjHeader }
func (v *ScriptValue) Size() uintptr         { return 24 }
func (v *ScriptValue) Destroy()              {}
func (v *ScriptValue) PropagateMark(c *gc.Collector) uintptr {
	c.Mark(&v.Ref)
	return v.Size()
}
