package curve

// Chain returns a transfer function that applies fn twice. Chaining a
// Power2 gives a quartic-shaped response, chaining a Root2 a fourth root.
//
// Endpoints are preserved: if fn maps 0 to 0 and max to max, so does the
// chained function.
func Chain[T Unsigned](fn Transfer[T]) Transfer[T] {
	return func(x T) T {
		return fn(fn(x))
	}
}

// NewChained creates a curve whose transfer function of kind k is applied
// twice before the saturation blend. Saturation and clamping behave as for
// New.
//
// NewChained panics if k is not a defined Kind.
func NewChained[T Unsigned](k Kind, opts ...Option) *Curve[T] {
	fn, err := TransferFor[T](k)
	if err != nil {
		panic(err)
	}
	return newCurve(Chain(fn), k, true, false, opts)
}
