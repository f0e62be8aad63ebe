package render

// Flattener is the conversion capability a math value may expose: any
// vector or matrix passed to a uniform setter that implements it is
// flattened before upload. Matrices must flatten in column-major
// order. Plain slices are treated as already flat.
type Flattener interface {
	Flatten() []float32
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Flatten returns the vector's components.
func (v Vec2) Flatten() []float32 {
	return []float32{v.X, v.Y}
}

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Flatten returns the vector's components.
func (v Vec3) Flatten() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Vec4 represents a 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Flatten returns the vector's components.
func (v Vec4) Flatten() []float32 {
	return []float32{v.X, v.Y, v.Z, v.W}
}

// Mat4 is a 4x4 matrix in column-major order, matching what the
// matrix uniform upload calls expect.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// Flatten returns the matrix's components in column-major order.
func (m Mat4) Flatten() []float32 {
	return m[:]
}
