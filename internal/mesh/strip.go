package mesh

// StripToList expands triangle-strip indices into an equivalent triangle list.
// Every odd strip triangle has its first two indices swapped to keep the winding
// of the strip, and degenerate triangles (any repeated index) are dropped, so the
// joins between strip segments disappear.
func StripToList(strip []uint32) []uint32 {
	if len(strip) < 3 {
		return []uint32{}
	}
	out := make([]uint32, 0, 3*(len(strip)-2))
	for k := 0; k+2 < len(strip); k++ {
		a, b, c := strip[k], strip[k+1], strip[k+2]
		if a == b || b == c || a == c {
			continue
		}
		if k%2 == 1 {
			a, b = b, a
		}
		out = append(out, a, b, c)
	}
	return out
}
