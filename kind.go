package curve

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownKind is returned when a curve kind name or value is not one of
// the known transfer function families.
var ErrUnknownKind = errors.New("curve: unknown kind")

// Transfer is a transfer function: a pure mapping of the unsigned domain onto
// itself, applied before saturation and clamping.
type Transfer[T Unsigned] func(T) T

// Kind identifies a transfer function family. The set is closed; use NewFunc
// for a custom transfer function.
type Kind uint8

const (
	// Linear passes the input through unchanged.
	Linear Kind = iota

	// Power2 approximates a square: gentle near zero, steep near full scale.
	Power2

	// Power3 approximates a cube.
	Power3

	// Root2 approximates a square root, the inverse of Power2: steep near
	// zero, gentle near full scale.
	Root2
)

var kindNames = [...]string{
	Linear: "linear",
	Power2: "power2",
	Power3: "power3",
	Root2:  "root2",
}

// String returns the kind name.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind returns the kind named s. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// TransferFor returns the transfer function of kind k for the domain T.
func TransferFor[T Unsigned](k Kind) (Transfer[T], error) {
	switch uint64(maxOf[T]()) {
	case math.MaxUint8:
		if f := transferU8(k); f != nil {
			return convertTransfer[T](f), nil
		}
	case math.MaxUint16:
		if f := transferU16(k); f != nil {
			return convertTransfer[T](f), nil
		}
	default:
		if f := transferU32(k); f != nil {
			return convertTransfer[T](f), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
}

// convertTransfer adapts a transfer function of the same width to T. Named
// domain types get a converting wrapper.
func convertTransfer[T Unsigned, U uint8 | uint16 | uint32](f func(U) U) Transfer[T] {
	if g, ok := any(f).(func(T) T); ok {
		return g
	}
	return func(x T) T { return T(f(U(x))) }
}

func transferU8(k Kind) func(uint8) uint8 {
	switch k {
	case Linear:
		return LinearU8
	case Power2:
		return Power2U8
	case Power3:
		return Power3U8
	case Root2:
		return Root2U8
	}
	return nil
}

func transferU16(k Kind) func(uint16) uint16 {
	switch k {
	case Linear:
		return LinearU16
	case Power2:
		return Power2U16
	case Power3:
		return Power3U16
	case Root2:
		return Root2U16
	}
	return nil
}

func transferU32(k Kind) func(uint32) uint32 {
	switch k {
	case Linear:
		return LinearU32
	case Power2:
		return Power2U32
	case Power3:
		return Power3U32
	case Root2:
		return Root2U32
	}
	return nil
}
