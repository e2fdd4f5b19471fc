package novelty

// forEachCombination calls visit once for every strictly increasing
// m-subset of positions [0, n), each time passing the chosen positions
// (reused across calls — visit must not retain the slice). It is the
// shared enumeration primitive behind both tuple generators: a
// "size-≤k subset of a sorted atom vector" is just, for each m from 0 to
// k, every m-combination of the vector's positions.
func forEachCombination(n, m int, visit func(positions []int)) {
	if m == 0 {
		visit(nil)
		return
	}
	if m > n {
		return
	}
	positions := make([]int, m)
	for i := range positions {
		positions[i] = i
	}
	for {
		visit(positions)
		// Find the rightmost position that can still be advanced.
		i := m - 1
		for i >= 0 && positions[i] == n-m+i {
			i--
		}
		if i < 0 {
			return
		}
		positions[i]++
		for j := i + 1; j < m; j++ {
			positions[j] = positions[j-1] + 1
		}
	}
}
