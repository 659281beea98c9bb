// Package view holds the eased view models the controllers write to.
// A controller mutates the target transform; the per-frame Step moves the
// visible transform a fixed fraction closer and pushes it to the bound scene
// object. The model does not care why a target changed.
package view

import (
	"math"

	"github.com/cymmbal/demo-gems/pkg/geometry"
)

// Transform is a position plus rotation for one scene object
type Transform struct {
	Position geometry.Vector3
	Rotation geometry.EulerRotation
}

// Object is the scene-side handle a model pushes eased transforms to
type Object interface {
	ApplyTransform(Transform)
}

// Model owns the target and current transform for one scene object.
// Created when the object is bound, replaced when the scene reloads.
type Model struct {
	object    Object
	target    Transform
	current   Transform
	easing    float64
	threshold float64
}

// NewModel creates a view model with the given easing factor per frame and
// settle threshold per axis
func NewModel(easing, threshold float64) *Model {
	return &Model{easing: easing, threshold: threshold}
}

// Bind attaches a scene object and pushes the current transform to it
func (m *Model) Bind(obj Object) {
	m.object = obj
	m.push()
}

// SetTarget updates the target transform. Nil leaves that part unchanged.
// The visible transform is not touched; Step eases toward the new target.
func (m *Model) SetTarget(pos *geometry.Vector3, rot *geometry.EulerRotation) {
	if pos != nil {
		m.target.Position = *pos
	}
	if rot != nil {
		m.target.Rotation = *rot
	}
}

// SetTargetPosition updates only the target position
func (m *Model) SetTargetPosition(pos geometry.Vector3) {
	m.target.Position = pos
}

// SetTargetRotation updates only the target rotation
func (m *Model) SetTargetRotation(rot geometry.EulerRotation) {
	m.target.Rotation = rot
}

// Target returns the transform the model is easing toward
func (m *Model) Target() Transform {
	return m.target
}

// Current returns the eased transform the renderer shows
func (m *Model) Current() Transform {
	return m.current
}

// Snap jumps the visible transform straight to the target
func (m *Model) Snap() {
	m.current = m.target
	m.push()
}

// Step advances the visible transform one frame toward the target, pushes it
// to the bound object, and reports whether every axis is within the settle
// threshold.
func (m *Model) Step() bool {
	m.current.Position.X += (m.target.Position.X - m.current.Position.X) * m.easing
	m.current.Position.Y += (m.target.Position.Y - m.current.Position.Y) * m.easing
	m.current.Position.Z += (m.target.Position.Z - m.current.Position.Z) * m.easing
	m.current.Rotation.X += (m.target.Rotation.X - m.current.Rotation.X) * m.easing
	m.current.Rotation.Y += (m.target.Rotation.Y - m.current.Rotation.Y) * m.easing
	m.current.Rotation.Z += (m.target.Rotation.Z - m.current.Rotation.Z) * m.easing

	m.push()
	return m.settled()
}

func (m *Model) push() {
	if m.object != nil {
		m.object.ApplyTransform(m.current)
	}
}

func (m *Model) settled() bool {
	return math.Abs(m.target.Position.X-m.current.Position.X) <= m.threshold &&
		math.Abs(m.target.Position.Y-m.current.Position.Y) <= m.threshold &&
		math.Abs(m.target.Position.Z-m.current.Position.Z) <= m.threshold &&
		math.Abs(m.target.Rotation.X-m.current.Rotation.X) <= m.threshold &&
		math.Abs(m.target.Rotation.Y-m.current.Rotation.Y) <= m.threshold &&
		math.Abs(m.target.Rotation.Z-m.current.Rotation.Z) <= m.threshold
}
