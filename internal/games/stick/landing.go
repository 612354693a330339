package stick

import "fmt"

// Land evaluates where a flat stick's tip ends up.
// The tip must fall strictly inside a platform; it is perfect when it also falls
// inside the perfectArea-wide window centered on that platform, edges included.
// The stick must be rotated exactly 90 degrees.
func Land(stick Stick, platforms []Platform, perfectArea float64) (Landing, error) {
	if stick.Rotation != RotationFlat {
		return Landing{Platform: NoPlatform}, fmt.Errorf("%w: landing evaluated with stick at %v°", ErrInvariantViolation, stick.Rotation)
	}

	far := stick.FarX()
	for i, p := range platforms {
		span := p.Span()
		if !span.ContainsOpen(far) {
			continue
		}
		return Landing{
			Platform: i,
			Perfect:  span.Centered(perfectArea).ContainsClosed(far),
		}, nil
	}
	return Landing{Platform: NoPlatform}, nil
}
