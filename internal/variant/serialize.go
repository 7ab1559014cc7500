package variant

import (
	"encoding/binary"

	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// entry is one (nameHash, value) pair contributing to the canonical
// variant-hash buffer.
type entry struct {
	nameHash uint64
	value    uint32
}

// serializeAndHash builds the canonical buffer of spec §4.6 and hashes
// it. idHash is the source hash at build time (C9) or the shaderIdHash at
// runtime (C15) — the only two fields that differ between the two call
// sites; everything else is identical, which is what guarantees bit-for-
// bit parity between them (spec §8 property 4).
func serializeAndHash(idHash uint64, stage vstypes.Stage, entries []entry) uint64 {
	sorted := make([]entry, len(entries))
	copy(sorted, entries)
	hashing.SortByKeys(sorted,
		func(e entry) uint64 { return e.nameHash },
		func(e entry) uint32 { return e.value },
	)

	buf := make([]byte, 0, 16+len(sorted)*16)
	var tmp8 [8]byte
	var tmp4 [4]byte

	binary.LittleEndian.PutUint64(tmp8[:], idHash)
	buf = append(buf, tmp8[:]...)

	binary.LittleEndian.PutUint32(tmp4[:], uint32(stage))
	buf = append(buf, tmp4[:]...)

	binary.LittleEndian.PutUint32(tmp4[:], uint32(len(sorted)))
	buf = append(buf, tmp4[:]...)

	for _, e := range sorted {
		binary.LittleEndian.PutUint64(tmp8[:], e.nameHash)
		buf = append(buf, tmp8[:]...)
		binary.LittleEndian.PutUint32(tmp4[:], e.value)
		buf = append(buf, tmp4[:]...)
		binary.LittleEndian.PutUint32(tmp4[:], 0) // reserved
		buf = append(buf, tmp4[:]...)
	}

	return hashing.HashBytes(buf)
}
