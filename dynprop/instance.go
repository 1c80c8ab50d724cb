package dynprop

import (
	"errors"
	"fmt"
	"slices"

	"github.com/delaneyj/propcore/property"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrDuplicate       = errors.New("property already declared")
	ErrKindMismatch    = errors.New("value of the wrong kind")
	ErrInvalidColor    = errors.New("invalid color")
	ErrConstant        = errors.New("property is constant")
	ErrBound           = errors.New("property has a binding or link")
)

// BindingAnimation selects how a binding's changes are animated. Transition
// wins over Animation; the zero value does not animate.
type BindingAnimation struct {
	Animation  *property.Animation
	Transition property.TransitionDetail
}

type cell struct {
	prop *property.Property[Value]
	kind Kind
	// applied by Set when the caller passes none
	anim     *property.Animation
	constant bool
}

// Instance is a set of named, typed properties sharing one System.
type Instance struct {
	sys   *property.System
	cells map[string]*cell
}

func NewInstance(sys *property.System) *Instance {
	return &Instance{
		sys:   sys,
		cells: map[string]*cell{},
	}
}

func (in *Instance) System() *property.System {
	return in.sys
}

// Declare adds a property whose kind is fixed by initial.
func (in *Instance) Declare(name string, initial Value) error {
	if _, ok := in.cells[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	in.cells[name] = &cell{
		prop: property.NewNamed(in.sys, initial, name),
		kind: initial.kind,
	}
	return nil
}

func (in *Instance) Names() []string {
	names := make([]string, 0, len(in.cells))
	for name := range in.cells {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (in *Instance) lookup(name string) (*cell, error) {
	c, ok := in.cells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return c, nil
}

func (c *cell) check(name string, v Value) error {
	if c.constant {
		return fmt.Errorf("%w: %s", ErrConstant, name)
	}
	if v.kind != c.kind {
		return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, name, c.kind, v.kind)
	}
	return nil
}

func (in *Instance) Kind(name string) (Kind, error) {
	c, err := in.lookup(name)
	if err != nil {
		return KindVoid, err
	}
	return c.kind, nil
}

// Get reads a property, recording a dependency when called from a binding.
func (in *Instance) Get(name string) (Value, error) {
	c, err := in.lookup(name)
	if err != nil {
		return Value{}, err
	}
	return c.prop.Get(), nil
}

// MustGet is Get for bindings, where a missing property is a programming
// error.
func (in *Instance) MustGet(name string) Value {
	v, err := in.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// SetDefaultAnimation makes every later Set on name animate with anim. A nil
// anim switches it off again.
func (in *Instance) SetDefaultAnimation(name string, anim *property.Animation) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	c.anim = anim
	return nil
}

// Set writes v, animating towards it if name has a default animation.
func (in *Instance) Set(name string, v Value) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	return in.set(name, c, v, c.anim)
}

// SetAnimated writes v through anim regardless of the default.
func (in *Instance) SetAnimated(name string, v Value, anim property.Animation) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	return in.set(name, c, v, &anim)
}

func (in *Instance) set(name string, c *cell, v Value, anim *property.Animation) error {
	if err := c.check(name, v); err != nil {
		return err
	}
	if anim == nil {
		c.prop.Set(v)
		return nil
	}
	property.SetAnimatedValueFunc(c.prop, v, *anim, Value.Interpolate)
	return nil
}

// setNow writes v without the default animation.
func (in *Instance) setNow(name string, v Value) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	return in.set(name, c, v, nil)
}

// Bind installs fn as the binding of name. A result of the wrong kind panics
// with ErrKindMismatch when the binding is evaluated.
func (in *Instance) Bind(name string, fn func() Value, ba BindingAnimation) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	if c.constant {
		return fmt.Errorf("%w: %s", ErrConstant, name)
	}
	checked := func() Value {
		v := fn()
		if err := c.check(name, v); err != nil {
			panic(err)
		}
		return v
	}

	switch {
	case ba.Transition != nil:
		property.SetAnimatedBindingForTransitionFunc(c.prop, checked, ba.Transition, Value.Interpolate)
	case ba.Animation != nil:
		property.SetAnimatedBindingFunc(c.prop, checked, *ba.Animation, Value.Interpolate)
	default:
		c.prop.SetBinding(checked)
	}
	return nil
}

// Link ties two properties of the same kind together. They start out with
// the value of b, and a binding on b keeps driving both.
func (in *Instance) Link(a, b string) error {
	ca, err := in.lookup(a)
	if err != nil {
		return err
	}
	cb, err := in.lookup(b)
	if err != nil {
		return err
	}
	if ca.constant || cb.constant {
		return fmt.Errorf("%w: cannot link %s with %s", ErrConstant, a, b)
	}
	if ca.kind != cb.kind {
		return fmt.Errorf("%w: cannot link %s (%s) with %s (%s)", ErrKindMismatch, a, ca.kind, b, cb.kind)
	}
	property.LinkTwoWay(ca.prop, cb.prop)
	return nil
}

// LinkExternal ties name to a property owned by someone else, such as a
// property of the host application.
func (in *Instance) LinkExternal(name string, p *property.Property[Value]) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	if err := c.check(name, p.GetUntracked()); err != nil {
		return err
	}
	property.LinkTwoWay(c.prop, p)
	return nil
}

// SetConstant freezes name. Bound and linked properties cannot be frozen,
// since their value still follows something else.
func (in *Instance) SetConstant(name string) error {
	c, err := in.lookup(name)
	if err != nil {
		return err
	}
	if c.prop.HasBinding() {
		return fmt.Errorf("%w: %s", ErrBound, name)
	}
	c.prop.SetConstant()
	c.constant = true
	return nil
}

func (in *Instance) HasBinding(name string) (bool, error) {
	c, err := in.lookup(name)
	if err != nil {
		return false, err
	}
	return c.prop.HasBinding(), nil
}

// Drop drops every property of the instance. The instance must not be used
// afterwards.
func (in *Instance) Drop() {
	for _, name := range in.Names() {
		in.cells[name].prop.Drop()
	}
	clear(in.cells)
}
