// Package hashing implements the 64-bit non-cryptographic hash primitive
// (C1) used for content hashes, variant hashes, and cache keys throughout
// the pipeline. It is FNV-1a over 64 bits, exposed as a seedable chain so
// callers can fold several values into one hash without concatenating
// buffers first.
package hashing

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Seed returns the initial chain value. Passing 0 as the chain value to
// Bytes, String or Words is equivalent to starting from Seed().
func Seed() uint64 { return offset64 }

// Bytes folds b into the running hash h and returns the new chain value.
func Bytes(h uint64, b []byte) uint64 {
	if h == 0 {
		h = offset64
	}
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// String folds s into the running hash h.
func String(h uint64, s string) uint64 {
	if h == 0 {
		h = offset64
	}
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// Words folds a slice of 32-bit words into the running hash h, each word
// consumed little-endian. Used for hashing SPIR-V bytecode without first
// copying it into a byte buffer.
func Words(h uint64, words []uint32) uint64 {
	if h == 0 {
		h = offset64
	}
	var b [4]byte
	for _, w := range words {
		b[0] = byte(w)
		b[1] = byte(w >> 8)
		b[2] = byte(w >> 16)
		b[3] = byte(w >> 24)
		h = Bytes(h, b[:])
	}
	return h
}

// Uint64 folds a single little-endian u64 into the running hash h.
func Uint64(h uint64, v uint64) uint64 {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return Bytes(h, b[:])
}

// Uint32 folds a single little-endian u32 into the running hash h.
func Uint32(h uint64, v uint32) uint64 {
	var b [4]byte
	for i := 0; i < 4; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return Bytes(h, b[:])
}

// HashBytes is a convenience one-shot hash of a single byte slice.
func HashBytes(b []byte) uint64 { return Bytes(0, b) }

// HashString is a convenience one-shot hash of a single string.
func HashString(s string) uint64 { return String(0, s) }

// HashWords is a convenience one-shot hash of a u32 word slice (used for
// SPIR-V content hashing, spec §3 "spirvHash = hash(spirv words)").
func HashWords(words []uint32) uint64 { return Words(0, words) }
