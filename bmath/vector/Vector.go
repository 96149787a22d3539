//The package provides simple operations on 3d vectors
//used for great-circle computations on the unit sphere
package vector

import (
	"fmt"
	"math"
)

//3D vector structure
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
	Z float64 //Z-coordinate
}

//Converts a vector into a string
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

//Creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//FromSpherical creates the unit vector pointing to the latitude and longitude (in radians)
//
//X points to (0, 0), Y to (0, 90°E) and Z to the north pole
func FromSpherical(latitude, longitude float64) Vector {
	return Create(
		math.Cos(latitude)*math.Cos(longitude),
		math.Cos(latitude)*math.Sin(longitude),
		math.Sin(latitude))
}

//Spherical returns latitude and longitude (in radians) of the direction of the vector
func (v Vector) Spherical() (float64, float64) {
	return math.Atan2(v.Z, math.Hypot(v.X, v.Y)), math.Atan2(v.Y, v.X)
}

//Dot returns the scalar product of two vectors
//
//The product of two vectors is a sum of products of each coordinate
func (v Vector) Dot(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

//Cross returns the vector product of two vectors
func (v Vector) Cross(b Vector) Vector {
	return Create(
		v.Y*b.Z-v.Z*b.Y,
		v.Z*b.X-v.X*b.Z,
		v.X*b.Y-v.Y*b.X)
}

//Angle returns the angle between two vectors in radians.
//
//atan2 of the cross and dot products stays accurate for
//nearly parallel and nearly opposite vectors
func (v Vector) Angle(b Vector) float64 {
	return math.Atan2(v.Cross(b).Magnitude(), v.Dot(b))
}

//Retruns a magnitude of the vector
//
//The magnitude of the vector is the length of a line that starts in point (0,0,0)
//and ends in the point set by the vector coordinates
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

//Multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y, a*v.Z)
}

//Adds two vectors
func (a Vector) Add(b Vector) Vector {
	return Create(a.X+b.X, a.Y+b.Y, a.Z+b.Z)
}

//Subtracts one vector from another
func (a Vector) Subtract(b Vector) Vector {
	return Create(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

//Returns a vector which is simmetrical to this vector vs (0,0,0) point
func (v Vector) Negate() Vector {
	return Create(-v.X, -v.Y, -v.Z)
}

//Returns a vector of magnitude one which is collinear to this vector
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()

	if math.Abs(magnitude) < 1e-10 {
		return v
	}
	return v.MultiplyByConst(1.0 / magnitude)
}
