package field

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGF256(t testing.TB, opts ...Option) *Galois[uint16] {
	g, err := NewGF256(opts...)
	require.NoError(t, err)
	return g
}

func TestGaloisAccessors(t *testing.T) {
	g := setupGF256(t)
	assert.Equal(t, uint16(0x100), g.Order())
	assert.Equal(t, uint16(0x11B), g.Base())
	assert.Equal(t, DefaultInverseSteps, g.InverseSteps())

	g = setupGF256(t, WithExactInverse())
	assert.Equal(t, 0, g.InverseSteps())

	g = setupGF256(t, WithInverseSteps(-3))
	assert.Equal(t, 0, g.InverseSteps())
}

func TestGaloisOptionError(t *testing.T) {
	_, err := NewGF256(WithLogger(""))
	require.ErrorIs(t, err, ErrInvalidOption)

	g, err := NewGF16(WithLogger("field-test"))
	require.NoError(t, err)
	assert.NotNil(t, g.logger())
}

// TestGaloisBasic checks the identities on every element of GF(2^8)
func TestGaloisBasic(t *testing.T) {
	g := setupGF256(t)
	for a := uint16(0); a < 0x100; a++ {
		assert.Equal(t, uint16(0), g.Add(a, a), "a + a")
		assert.Equal(t, a, g.Add(a, 0), "a + 0")
		assert.Equal(t, a, g.Sub(a, 0), "a - 0")
		assert.Equal(t, a, g.Mul(a, 1), "a * 1")
		assert.Equal(t, uint16(0), g.Mul(a, 0), "a * 0")
	}
}

func TestGaloisCommutativity(t *testing.T) {
	g := setupGF256(t)
	for a := uint16(0); a < 0x100; a++ {
		for b := uint16(0); b < 0x100; b++ {
			if g.Add(a, b) != g.Add(b, a) {
				t.Fatalf("Add not commutative: %#x + %#x", a, b)
			}
			if g.Mul(a, b) != g.Mul(b, a) {
				t.Fatalf("Mul not commutative: %#x * %#x", a, b)
			}
			if p := g.Mul(a, b); p >= g.Order() {
				t.Fatalf("Mul(%#x, %#x) = %#x is not reduced", a, b, p)
			}
		}
	}
}

func TestGaloisAssociativityAndDistributivity(t *testing.T) {
	g := setupGF256(t)
	triples := [][3]uint16{{3, 7, 11}, {100, 200, 50}, {255, 254, 253}, {1, 128, 64}, {0x53, 0xCA, 0x02}}
	for _, tr := range triples {
		a, b, c := tr[0], tr[1], tr[2]
		assert.Equal(t, g.Mul(g.Mul(a, b), c), g.Mul(a, g.Mul(b, c)), "associativity %v", tr)
		assert.Equal(t, g.Add(g.Mul(a, b), g.Mul(a, c)), g.Mul(a, g.Add(b, c)), "distributivity %v", tr)
	}
}

func TestGaloisKnownProducts(t *testing.T) {
	g := setupGF256(t)
	testCases := []struct {
		a, b, want uint16
	}{
		{0x53, 0xCA, 0x01},
		{0x57, 0x83, 0xC1},
		{0x57, 0x13, 0xFE},
		{0x02, 0x80, 0x1B},
		{0x02, 0x04, 0x08},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, g.Mul(tc.a, tc.b), "Mul(%#x, %#x)", tc.a, tc.b)
	}
}

func TestGaloisDivIdentity(t *testing.T) {
	g := setupGF256(t)
	for a := uint16(0); a < 0x400; a++ {
		for b := uint16(1); b < 0x100; b++ {
			q, r := g.Div(a, b)
			if LeadingBit(r) >= LeadingBit(b) {
				t.Fatalf("Div(%#x, %#x): remainder %#x not below divisor", a, b, r)
			}
			if got := g.Add(g.MulRaw(q, b), r); got != a {
				t.Fatalf("Div(%#x, %#x) = (%#x, %#x) reconstructs %#x", a, b, q, r, got)
			}
		}
	}
}

func TestGaloisDivShortDividend(t *testing.T) {
	g := setupGF256(t)
	q, r := g.Div(0x05, 0x11B)
	assert.Equal(t, uint16(0), q)
	assert.Equal(t, uint16(0x05), r)

	q, r = g.Div(0x53, 0)
	assert.Equal(t, uint16(0), q)
	assert.Equal(t, uint16(0x53), r)

	q, r = g.Div(0x11B, 0x11B)
	assert.Equal(t, uint16(1), q)
	assert.Equal(t, uint16(0), r)
}

func TestGaloisInverseExact(t *testing.T) {
	g := setupGF256(t, WithExactInverse())
	for a := uint16(1); a < 0x100; a++ {
		inv := g.Inv(a)
		if p := g.Mul(a, inv); p != 1 {
			t.Fatalf("Inv(%#x)=%#x, but product is %#x", a, inv, p)
		}
	}
	assert.Equal(t, uint16(0xCA), g.Inv(0x53))

	gf16, err := NewGF16(WithExactInverse())
	require.NoError(t, err)
	for a := uint8(1); a < 0x10; a++ {
		assert.Equal(t, uint8(1), gf16.Mul(a, gf16.Inv(a)), "GF(16) Inv(%#x)", a)
	}
}

// TestGaloisInverseCapped covers the default four-step inverse, which is
// correct only for elements whose Euclidean sequence is short enough.
func TestGaloisInverseCapped(t *testing.T) {
	g := setupGF256(t)
	for a := uint16(1); a <= 10; a++ {
		assert.Equal(t, uint16(1), g.Mul(a, g.Inv(a)), "Inv(%#x)", a)
	}
	assert.Equal(t, uint16(0xE1), g.Inv(0x0D))
	assert.NotEqual(t, uint16(1), g.Mul(11, g.Inv(11)))

	gf16, err := NewGF16()
	require.NoError(t, err)
	for a := uint8(1); a < 0x10; a++ {
		ok := gf16.Mul(a, gf16.Inv(a)) == 1
		assert.Equal(t, a != 10 && a != 12, ok, "GF(16) Inv(%#x)", a)
	}
}

func TestGaloisInverseZero(t *testing.T) {
	g := setupGF256(t)
	assert.Equal(t, uint16(0), g.Inv(0))
	assert.Equal(t, uint16(0), setupGF256(t, WithExactInverse()).Inv(0))
}

func TestGaloisQuoAndPow(t *testing.T) {
	g := setupGF256(t, WithExactInverse())
	for a := uint16(1); a < 0x100; a++ {
		assert.Equal(t, uint16(1), g.Pow(a, 255), "%#x^255", a)
		assert.Equal(t, a, g.Pow(a, 256), "%#x^256", a)
		assert.Equal(t, uint16(1), g.Quo(a, a), "%#x / %#x", a, a)
	}
	assert.Equal(t, uint16(1), g.Pow(0, 0))
	assert.Equal(t, uint16(0x08), g.Pow(2, 3))
	assert.Equal(t, uint16(0x53), g.Quo(1, 0xCA))
}

func TestGF2_32Inversion(t *testing.T) {
	g, err := NewGF2_32(WithExactInverse())
	require.NoError(t, err)

	testCases := []uint64{1, 2, 3, 0x12345678, 0xFFFFFFFF}
	for _, a := range testCases {
		inv := g.Inv(a)
		assert.Less(t, inv, g.Order())
		assert.Equal(t, uint64(1), g.Mul(a, inv), "Inv(%#x)", a)
	}
}

func TestGF65536Random(t *testing.T) {
	g, err := NewGF65536(WithExactInverse())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := uint32(rng.Intn(0xFFFF)) + 1
		b := uint32(rng.Intn(0x10000))
		assert.Equal(t, uint32(1), g.Mul(a, g.Inv(a)), "Inv(%#x)", a)
		assert.Equal(t, g.Mul(a, b), g.Mul(b, a))
		assert.Equal(t, b, g.Mul(g.Quo(b, a), a))
	}
}

func BenchmarkGF256Mul(b *testing.B) {
	g := setupGF256(b)
	for i := 0; i < b.N; i++ {
		g.Mul(uint16(i&0xFF), 0xCA)
	}
}

func BenchmarkGF256InvExact(b *testing.B) {
	g := setupGF256(b, WithExactInverse())
	for i := 0; i < b.N; i++ {
		g.Inv(uint16(i&0xFE) + 1)
	}
}
