package field

// NewGF16 creates GF(2^4) with irreducible polynomial x^4 + x + 1
func NewGF16(opts ...Option) (*Galois[uint8], error) {
	return NewGalois[uint8](0x10, 0x13, opts...)
}

// NewGF256 creates GF(2^8) with the AES polynomial x^8 + x^4 + x^3 + x + 1.
// The polynomial needs nine bits, so elements are carried in uint16.
func NewGF256(opts ...Option) (*Galois[uint16], error) {
	return NewGalois[uint16](0x100, 0x11B, opts...)
}

// NewGF65536 creates GF(2^16) with irreducible polynomial
// x^16 + x^12 + x^3 + x + 1
func NewGF65536(opts ...Option) (*Galois[uint32], error) {
	return NewGalois[uint32](0x10000, 0x1100B, opts...)
}

// NewGF2_32 creates GF(2^32) with irreducible polynomial
// x^32 + x^7 + x^3 + x^2 + 1
func NewGF2_32(opts ...Option) (*Galois[uint64], error) {
	// x^32 + x^7 + x^3 + x^2 + 1 = 0x10000008D
	return NewGalois[uint64](0x100000000, 0x10000008D, opts...)
}
