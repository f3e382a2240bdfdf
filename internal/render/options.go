package render

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithNameWidth sets the hole name column width.
func WithNameWidth(width int) Option {
	return func(a *Assembler) {
		if width > 0 {
			a.nameWidth = width
		}
	}
}

// WithGolfers sets the two primary golfer names for the header.
func WithGolfers(first, second string) Option {
	return func(a *Assembler) {
		a.golferA = first
		a.golferB = second
	}
}

// WithReference sets the optional reference golfer shown in the header.
func WithReference(name string) Option {
	return func(a *Assembler) {
		a.reference = name
	}
}

// WithReverse reverses the emitted row order. Computed values are not
// affected; only the final line sequence flips.
func WithReverse(reverse bool) Option {
	return func(a *Assembler) {
		a.reverse = reverse
	}
}

// WithColor enables or disables ANSI color on deltas and the header.
func WithColor(enabled bool) Option {
	return func(a *Assembler) {
		a.color = enabled
	}
}
