package motion

// maxCount caps count accumulation. A longer digit run saturates, which
// also bounds the work a single command can do (o inserts count lines).
const maxCount = 99999

// CountState tracks count prefix accumulation during parsing.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted. A '0' is only accepted once a
// non-zero digit has started the count; otherwise it is the "0" chord.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	if c.Value > (maxCount-digit)/10 {
		c.Value = maxCount
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Raw returns the accumulated count, or 0 if no count was typed.
func (c *CountState) Raw() int {
	if !c.Active {
		return 0
	}
	return c.Value
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	return EffectiveCount(c.Raw())
}

// EffectiveCount maps an absent or malformed count to 1.
func EffectiveCount(count int) int {
	if count <= 0 {
		return 1
	}
	return count
}
