package math

// Stack is a matrix stack with glPushMatrix/glPopMatrix semantics.
// Transform operations post-multiply the top matrix, so the most recent
// transform applies first to local geometry.
type Stack struct {
	top   Mat4
	saved []Mat4
}

// NewStack returns a stack whose top is the identity.
func NewStack() *Stack {
	return &Stack{top: Identity()}
}

// Top returns the current matrix.
func (s *Stack) Top() Mat4 {
	return s.top
}

// Depth returns the number of saved matrices.
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Push saves the current matrix.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.top)
}

// Pop restores the last saved matrix. It panics on underflow since that is
// always a programming error.
func (s *Stack) Pop() {
	n := len(s.saved)
	if n == 0 {
		panic("math: matrix stack underflow")
	}
	s.top = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Mul post-multiplies the top matrix by m.
func (s *Stack) Mul(m Mat4) {
	s.top = s.top.Mul(m)
}

// Translate post-multiplies a translation.
func (s *Stack) Translate(x, y, z float32) {
	s.Mul(Translate(x, y, z))
}

// Rotate post-multiplies a rotation of degrees about axis.
func (s *Stack) Rotate(degrees float64, axis Vec3) {
	s.Mul(RotateDegrees(degrees, axis))
}

// Reset clears saved matrices and loads m.
func (s *Stack) Reset(m Mat4) {
	s.top = m
	s.saved = s.saved[:0]
}
