package otherUtils

// IIf is a ternary operator-like implementation
func IIf[T any](condition bool, trueValue T, falseValue T) T {
	// pequena, mas evita um monte de if de três linhas espalhado
	if condition {
		return trueValue
	}
	return falseValue
}
