package automaton

// ParseRules extracts a rule table from a delimited string. Digits
// accumulate into the current number and a comma, space or tab completes
// it. Any other character ends parsing, as does a number growing past 255,
// and both discard the run in progress along with the rest of the string.
// Malformed input is never an error: an empty result makes the engine fall
// back to the default table.
func ParseRules(s string) []uint8 {
	var rules []uint8
	acc := 0
	pending := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			acc = acc*10 + int(ch-'0')
			pending = true
			if acc > 255 {
				return rules
			}
		case ch == ',' || ch == ' ' || ch == '\t':
			if pending {
				rules = append(rules, uint8(acc))
				acc = 0
				pending = false
			}
		default:
			return rules
		}
	}
	if pending {
		rules = append(rules, uint8(acc))
	}
	return rules
}
