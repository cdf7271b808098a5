package geometry

import "math"

// epsilon below which directions are treated as degenerate
const epsilon = 1e-9

// Quaternion is a rotation in 3D space stored as (X, Y, Z, W)
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the rotation that leaves every vector unchanged
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// IsIdentity reports whether q is the identity rotation within tolerance
func (q Quaternion) IsIdentity() bool {
	// q and -q describe the same rotation
	return math.Abs(math.Abs(q.W)-1) < 1e-9 &&
		math.Abs(q.X) < 1e-9 && math.Abs(q.Y) < 1e-9 && math.Abs(q.Z) < 1e-9
}

// Length returns the norm of the quaternion
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns the unit quaternion. A zero quaternion becomes the identity.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l < epsilon {
		return IdentityQuaternion()
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Mul returns the Hamilton product q * other (apply other first, then q)
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to a vector
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the rotation of angle radians around axis
func AxisAngle(axis Vector3, angle float64) Quaternion {
	a := axis.Normalize()
	if a.IsZero(epsilon) {
		return IdentityQuaternion()
	}
	s := math.Sin(angle / 2)
	return Quaternion{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: math.Cos(angle / 2)}
}

// FromTo returns the shortest-arc rotation turning direction a onto direction b.
// Zero-length input yields the identity.
func FromTo(a, b Vector3) Quaternion {
	a = a.Normalize()
	b = b.Normalize()
	if a.IsZero(epsilon) || b.IsZero(epsilon) {
		return IdentityQuaternion()
	}

	d := a.Dot(b)
	if d < -1+epsilon {
		// Opposite directions: turn half way around any axis perpendicular to a
		axis := Up.Cross(a)
		if axis.IsZero(epsilon) {
			axis = Right.Cross(a)
		}
		return AxisAngle(axis, math.Pi)
	}

	c := a.Cross(b)
	return Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}.Normalized()
}

// LookRotation returns the rotation that turns Forward onto direction while keeping
// up as the reference vertical.
//
// A zero-length direction yields the identity. When direction is parallel to up the
// vertical reference is undefined and the shortest-arc rotation from Forward is used.
func LookRotation(direction, up Vector3) Quaternion {
	f := direction.Normalize()
	if f.IsZero(epsilon) {
		return IdentityQuaternion()
	}

	r := up.Cross(f)
	if r.IsZero(epsilon) {
		return FromTo(Forward, f)
	}
	r = r.Normalize()
	u := f.Cross(r)

	// Rotation matrix with columns r, u, f
	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	var q Quaternion
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quaternion{
			X: (m21 - m12) * s,
			Y: (m02 - m20) * s,
			Z: (m10 - m01) * s,
			W: 0.25 / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = Quaternion{
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = Quaternion{
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = Quaternion{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
			W: (m10 - m01) / s,
		}
	}

	return q.Normalized()
}
