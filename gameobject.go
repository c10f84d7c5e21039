package sable

// CollisionBox is an axis-aligned collision rectangle relative to the owning
// object's position. An object without a box never collides.
type CollisionBox struct {
	OffsetX, OffsetY, Width, Height float64
}

// GameObject is a registered entity: a named sprite with a position, an
// optional collision box, and a render layer. Objects are created in the load
// stage or via Engine.Instantiate and live until removed or the engine ends.
type GameObject struct {
	Name   string
	Sprite *Sprite

	Position Vec2
	Size     Vec2
	Layer    int

	// Collision is nil when the object takes no part in collision checks.
	Collision *CollisionBox

	// instance is the 1-based clone index for instantiated objects,
	// 0 for originals.
	instance int
}

// NewGameObject creates an object drawing the given sprite. Size defaults to
// the sprite's size.
func NewGameObject(name string, sprite *Sprite) *GameObject {
	o := &GameObject{Name: name, Sprite: sprite}
	if sprite != nil {
		o.Position = sprite.Position
		o.Size = sprite.Size
	}
	return o
}

// EmptyGameObject returns the placeholder handed out on lookup misses.
func EmptyGameObject(name string) *GameObject {
	return &GameObject{Name: name, Sprite: EmptySprite(name)}
}

// Instance returns the clone index assigned by Instantiate, or 0 if the
// object is not an instance.
func (o *GameObject) Instance() int {
	return o.instance
}

// bounds returns the object's current rectangle scaled by the global scale
// factor. Used for frame clearing and bounds checks.
func (o *GameObject) bounds(scale float64) Rect {
	return Rect{
		X:      o.Position.X * scale,
		Y:      o.Position.Y * scale,
		Width:  o.Size.X * scale,
		Height: o.Size.Y * scale,
	}
}

// collisionRect returns the absolute collision rectangle, valid only when
// Collision is non-nil.
func (o *GameObject) collisionRect() Rect {
	return Rect{
		X:      o.Position.X + o.Collision.OffsetX,
		Y:      o.Position.Y + o.Collision.OffsetY,
		Width:  o.Collision.Width,
		Height: o.Collision.Height,
	}
}
