package engine

// Equilibrium returns the stationary expected populations of the two-state chain
// a = total * pBA / (pAB + pBA); the batch size does not change the fixed point
// ok is false when both probabilities are zero and every split is stationary
func Equilibrium(total int, pAB, pBA float64) (a, b float64, ok bool) {
	sum := pAB + pBA
	if !(sum > 0) {
		return 0, 0, false
	}
	a = float64(total) * pBA / sum
	return a, float64(total) - a, true
}
