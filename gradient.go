package uishade

// gradientColor maps a normalized gradient position t to a color.
// Inside the open interval (0, 1) the result is the exact linear
// interpolation between start and end. At or below 0 the start color is
// used when fillStart is set, transparent otherwise; above 1 the end color
// is used when fillEnd is set, transparent otherwise.
//
// Callers must guarantee a non-zero length span when computing t
// (end length != start length); equal lengths are a precondition
// violation, not a recoverable error here.
func gradientColor(t float32, start, end RGBA, fillStart, fillEnd bool) RGBA {
	switch {
	case t <= 0:
		if fillStart {
			return start
		}
		return Transparent
	case t > 1:
		if fillEnd {
			return end
		}
		return Transparent
	default:
		return start.Lerp(end, t)
	}
}

// gradientT normalizes a gradient-space distance into the [start, end]
// length span.
func gradientT(distance, startLen, endLen float32) float32 {
	return (distance - startLen) / (endLen - startLen)
}
