package number

// SelectPrecision combines the precisions of the three operands into the
// precision used to print every value of the sequence. The last operand only
// matters when all three are integers; otherwise the wider of first and
// increment wins. A nil result means at least one operand had no decimal
// precision and values are printed in compact float form.
func SelectPrecision(first, increment, last *int) *int {
	if first == nil || increment == nil || last == nil {
		return nil
	}

	if *first == 0 && *increment == 0 && *last == 0 {
		return intp(0)
	}

	return intp(max(*first, *increment))
}

// Width returns the widest integral digit count among the operands.
func Width(ps ...Parsed) (width int) {
	for _, p := range ps {
		width = max(width, p.IntegralDigits)
	}

	return width
}
