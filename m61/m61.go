package m61

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Modulus is the Mersenne prime 2^61 - 1. It doubles as the mask selecting
// the low 61 bits of a word.
const Modulus uint64 = 1<<61 - 1

// M61 is an integer modulo 2^61 - 1. The zero value is the residue 0.
type M61 struct {
	v uint64
}

var (
	zero = M61{}
	one  = M61{1}
)

// Zero returns the additive identity.
func Zero() M61 { return zero }

// One returns the multiplicative identity.
func One() M61 { return one }

// fold maps any 64-bit word onto its canonical residue. x&Modulus plus
// x>>61 is at most Modulus+7, so one conditional subtraction suffices.
func fold(x uint64) uint64 {
	x = (x & Modulus) + (x >> 61)
	if x >= Modulus {
		x -= Modulus
	}
	return x
}

// FromUint64 returns x mod 2^61-1.
func FromUint64(x uint64) M61 {
	return M61{fold(x)}
}

// FromUint32 returns x as a residue; every uint32 is already canonical.
func FromUint32(x uint32) M61 {
	return M61{uint64(x)}
}

// FromInt64 returns the non-negative representative of x mod 2^61-1.
func FromInt64(x int64) M61 {
	if x >= 0 {
		return M61{fold(uint64(x))}
	}
	// uint64(-x) is |x| for every negative x, math.MinInt64 included.
	return M61{fold(uint64(-x))}.Neg()
}

// FromInt32 returns the non-negative representative of x mod 2^61-1.
func FromInt32(x int32) M61 {
	if x >= 0 {
		return M61{uint64(x)}
	}
	return M61{Modulus - uint64(-int64(x))}
}

// Value returns the canonical residue in [0, Modulus).
func (a M61) Value() uint64 { return a.v }

// IsZero reports whether a is the additive identity.
func (a M61) IsZero() bool { return a.v == 0 }

// Equal reports whether a and b are the same residue. It is equivalent to
// a == b.
func (a M61) Equal(b M61) bool { return a.v == b.v }

// Add returns a + b.
func (a M61) Add(b M61) M61 {
	s := a.v + b.v
	if s >= Modulus {
		s -= Modulus
	}
	return M61{s}
}

// Sub returns a - b.
func (a M61) Sub(b M61) M61 {
	s := a.v + (Modulus - b.v)
	if s >= Modulus {
		s -= Modulus
	}
	return M61{s}
}

// Neg returns -a.
func (a M61) Neg() M61 {
	if a.v == 0 {
		return a
	}
	return M61{Modulus - a.v}
}

// Mul returns a * b. The 122-bit product is split at bit 61 and the two
// halves are added, since 2^61 ≡ 1.
func (a M61) Mul(b M61) M61 {
	hi, lo := bits.Mul64(a.v, b.v)
	top := hi<<3 | lo>>61
	return M61{fold(top + lo&Modulus)}
}

// Square returns a * a.
func (a M61) Square() M61 { return a.Mul(a) }

// Pow returns a^n by square-and-multiply. a^0 is 1 for every a, zero
// included.
func (a M61) Pow(n uint64) M61 {
	acc, base := one, a
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return acc
}

// Inverse returns the unique b with a*b = 1. It computes a^(Modulus-2)
// (Fermat). Zero has no inverse and yields ErrDivisionByZero.
func (a M61) Inverse() (M61, error) {
	if a.v == 0 {
		return zero, ErrDivisionByZero
	}
	return a.Pow(Modulus - 2), nil
}

// Div returns a / b, or ErrDivisionByZero when b is zero.
func (a M61) Div(b M61) (M61, error) {
	inv, err := b.Inverse()
	if err != nil {
		return zero, err
	}
	return a.Mul(inv), nil
}

// Sum returns the sum of xs; the empty sum is 0.
func Sum(xs ...M61) M61 {
	acc := zero
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Product returns the product of xs; the empty product is 1.
func Product(xs ...M61) M61 {
	acc := one
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	return acc
}

func (a M61) String() string {
	return strconv.FormatUint(a.v, 10)
}

// Format formats the residue as a uint64, so %x, %o, %b and width flags
// behave as they do for integers. The floating-point verbs %e, %f and %g
// print the exact residue in that notation, and %s prints the decimal
// string.
func (a M61) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		new(big.Float).SetUint64(a.v).Format(f, verb)
	case 's', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), a.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), a.v)
	}
}
