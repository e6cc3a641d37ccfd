package scrubber

import "math"

// BucketIndex maps a y coordinate to a letter bucket. The result is always
// within [0, bucketCount-1]; -1 is returned only when there are no buckets.
func BucketIndex(y, topInset, bottomInset, stripHeight float32, bucketCount int) int {
	if bucketCount <= 0 {
		return -1
	}
	slot := (stripHeight - topInset - bottomInset) / float32(bucketCount)
	if slot <= 0 {
		return 0
	}
	idx := int(math.Floor(float64((y - topInset) / slot)))
	return clampInt(idx, 0, bucketCount-1)
}

// BucketCenter returns the y coordinate of the middle of bucket index
func BucketCenter(index int, topInset, bottomInset, stripHeight float32, bucketCount int) float32 {
	if bucketCount <= 0 {
		return topInset
	}
	slot := (stripHeight - topInset - bottomInset) / float32(bucketCount)
	if slot < 0 {
		slot = 0
	}
	return topInset + slot*float32(index) + slot/2
}

// PullDistance is how far x lies left of the visible strip origin, which
// sits touchMargin pixels into the view.
func PullDistance(x, touchMargin float32) float32 {
	return max(0, touchMargin-x)
}

// PullFraction normalizes the pull distance against threshold. A zero or
// negative threshold disables fine mode and always yields 0.
func PullFraction(x, touchMargin, threshold float32) float32 {
	if threshold <= 0 {
		return 0
	}
	return clamp(PullDistance(x, touchMargin)/threshold, 0, 1)
}

// VerticalFraction maps y onto [0, 1] across the strip for fine scrolling
func VerticalFraction(y, topInset, stripHeight float32) float32 {
	if stripHeight <= 0 {
		return 0
	}
	return clamp((y-topInset)/stripHeight, 0, 1)
}

// Falloff is the gaussian bulge influence at distance slots from the touch
// point. A zero or negative radius disables the bulge.
func Falloff(distance, radius float32) float32 {
	if radius <= 0 {
		return 0
	}
	d := float64(distance)
	return float32(math.Exp(-d * d / float64(radius)))
}

func clamp(v, lo, hi float32) float32 {
	if v != v { // NaN
		return lo
	}
	return min(max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
