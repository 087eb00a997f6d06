package linear

// takeAt returns value at position and resets the slot, so the backing array does not keep the value alive.
func takeAt[S ~[]E, E any](slice S, position int) E {
	var emptyValue E
	value := slice[position]
	slice[position] = emptyValue
	return value
}

// grow allocates slice with given capacity and copies count elements into it, starting at front and wrapping
// around the end of old slice.
func grow[S ~[]E, E any](old S, front, count, capacity int) S {
	grown := make(S, capacity)
	walk := front
	for k := 0; k < count; k++ {
		grown[k] = old[walk]
		// modulus has to be the old length, grown slice is already linear
		walk = (walk + 1) % len(old)
	}

	return grown
}
