package subtle

// Multiply returns the exact product a·b using schoolbook long multiplication.
//
// Each pair of digits is multiplied into an unnormalized accumulator of
// len(a)+len(b) positions, and a single carry pass then brings every position
// back into 0..9. The cost is O(len(a)·len(b)) digit operations. Neither
// operand is modified.
func Multiply(a, b *Nat) *Nat {
	x, y := a.le(), b.le()

	acc := make([]uint64, len(x)+len(y))
	for i, dx := range x {
		if dx == 0 {
			continue
		}
		for j, dy := range y {
			acc[i+j] += uint64(dx) * uint64(dy)
		}
	}

	out := make([]uint8, len(acc))
	var carry uint64
	for pos, v := range acc {
		total := v + carry
		out[pos] = uint8(total % 10)
		carry = total / 10
	}

	return &Nat{digits: trim(out)}
}
