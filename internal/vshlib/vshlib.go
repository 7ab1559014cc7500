// Package vshlib implements the .vshlib library-container binary codec
// (C13): a header, a blob region holding concatenated .vshbin entry
// payloads, a table of contents sorted by (keyHash, stage), and an
// optional embedded engine-keywords file (spec §4.10).
package vshlib

import (
	"bytes"
	"encoding/binary"

	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

const (
	magic          = "VSHLIB00"
	version uint32 = 2
	// headerSize is the byte length of magic(8)+version(4)+flags(4)+
	// entryCount(4)+reserved0(4)+tocOffset(8)+tocSize(8)+keywordsOffset(8)+
	// keywordsSize(8) = 56.
	headerSize    = 56
	tocRecordSize = 32
)

var byteOrder = binary.LittleEndian

// Entry is one not-yet-written library entry: a built shader binary's
// already-encoded .vshbin blob, keyed by variant (or content) hash and
// stage.
type Entry struct {
	KeyHash uint64
	Stage   vstypes.Stage
	Blob    []byte
}

// DedupSignature computes the §4.11 step-6 dedup signature for an
// entry's key hash and stage, used by the library build orchestrator to
// drop duplicate variants silently.
func DedupSignature(keyHash uint64, stage vstypes.Stage) uint64 {
	h := hashing.Uint64(hashing.Seed(), keyHash)
	return hashing.Bytes(h, []byte{byte(stage)})
}

// Library is the decoded in-memory form of a .vshlib file.
type Library struct {
	Entries        []Entry
	EngineKeywords []byte
}

// Encode serialises entries (sorted by keyHash ASC, stage ASC) and an
// optional engine-keywords blob into a .vshlib byte image.
func Encode(entries []Entry, engineKeywords []byte) ([]byte, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for _, e := range sorted {
		if !e.Stage.Valid() {
			return nil, vserr.New(vserr.InvalidArgument, "library entry has invalid stage %d", e.Stage)
		}
		if e.KeyHash == 0 {
			return nil, vserr.New(vserr.InvalidArgument, "library entry has zero keyHash")
		}
	}
	hashing.SortByKeys(sorted,
		func(e Entry) uint64 { return e.KeyHash },
		func(e Entry) vstypes.Stage { return e.Stage },
	)

	var blob bytes.Buffer
	type tocRecord struct {
		keyHash uint64
		stage   vstypes.Stage
		offset  uint64
		size    uint64
	}
	toc := make([]tocRecord, len(sorted))
	for i, e := range sorted {
		toc[i] = tocRecord{keyHash: e.KeyHash, stage: e.Stage, offset: uint64(headerSize) + uint64(blob.Len()), size: uint64(len(e.Blob))}
		blob.Write(e.Blob)
	}

	tocOffset := uint64(headerSize) + uint64(blob.Len())
	tocSize := uint64(len(toc)) * tocRecordSize

	var keywordsOffset, keywordsSize uint64
	if len(engineKeywords) > 0 {
		keywordsOffset = tocOffset + tocSize
		keywordsSize = uint64(len(engineKeywords))
	}

	var out bytes.Buffer
	out.WriteString(magic)
	putU32(&out, version)
	putU32(&out, 0) // flags, reserved
	putU32(&out, uint32(len(sorted)))
	putU32(&out, 0) // reserved0
	putU64(&out, tocOffset)
	putU64(&out, tocSize)
	putU64(&out, keywordsOffset)
	putU64(&out, keywordsSize)

	out.Write(blob.Bytes())

	for _, t := range toc {
		putU64(&out, t.keyHash)
		out.WriteByte(byte(t.stage))
		out.Write(make([]byte, 7))
		putU64(&out, t.offset)
		putU64(&out, t.size)
	}

	if len(engineKeywords) > 0 {
		out.Write(engineKeywords)
	}

	return out.Bytes(), nil
}

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	byteOrder.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	byteOrder.PutUint64(b[:], v)
	buf.Write(b[:])
}

// Decode parses a .vshlib byte image, validating every bound named in
// spec §4.10.
func Decode(data []byte) (*Library, error) {
	if len(data) < headerSize || string(data[:8]) != magic {
		return nil, vserr.New(vserr.DeserializeError, "bad magic")
	}
	ver := byteOrder.Uint32(data[8:12])
	if ver != version {
		return nil, vserr.New(vserr.DeserializeError, "unsupported version %d", ver)
	}
	entryCount := byteOrder.Uint32(data[16:20])
	// Header layout past the 24-byte fixed prefix (magic+version+flags+
	// entryCount+reserved0): tocOffset(8) tocSize(8) keywordsOffset(8)
	// keywordsSize(8).
	tocOffset := byteOrder.Uint64(data[24:32])
	tocSize := byteOrder.Uint64(data[32:40])
	keywordsOffset := byteOrder.Uint64(data[40:48])
	keywordsSize := byteOrder.Uint64(data[48:56])

	fileSize := uint64(len(data))
	if tocOffset+tocSize > fileSize || tocOffset+tocSize < tocOffset {
		return nil, vserr.New(vserr.DeserializeError, "toc range exceeds file size")
	}
	if uint64(entryCount)*tocRecordSize != tocSize {
		return nil, vserr.New(vserr.DeserializeError, "toc size %d does not match entryCount %d", tocSize, entryCount)
	}

	if keywordsOffset != 0 {
		if keywordsOffset+keywordsSize > fileSize {
			return nil, vserr.New(vserr.DeserializeError, "keywords range exceeds file size")
		}
		if keywordsOffset < tocOffset+tocSize {
			return nil, vserr.New(vserr.DeserializeError, "keywords region overlaps toc")
		}
	}

	lib := &Library{Entries: make([]Entry, entryCount)}
	tocBytes := data[tocOffset : tocOffset+tocSize]
	for i := 0; i < int(entryCount); i++ {
		rec := tocBytes[i*tocRecordSize : (i+1)*tocRecordSize]
		keyHash := byteOrder.Uint64(rec[0:8])
		stage := vstypes.Stage(rec[8])
		offset := byteOrder.Uint64(rec[16:24])
		size := byteOrder.Uint64(rec[24:32])

		if offset < headerSize || offset+size > tocOffset || offset+size < offset {
			return nil, vserr.New(vserr.DeserializeError, "entry %d blob range [%d,%d) out of bounds", i, offset, offset+size)
		}
		lib.Entries[i] = Entry{KeyHash: keyHash, Stage: stage, Blob: data[offset : offset+size]}
	}

	if keywordsOffset != 0 {
		lib.EngineKeywords = data[keywordsOffset : keywordsOffset+keywordsSize]
	}

	return lib, nil
}

// Lookup scans for the first entry matching (keyHash, stage) and returns
// its blob sub-slice.
func (l *Library) Lookup(keyHash uint64, stage vstypes.Stage) ([]byte, bool) {
	for _, e := range l.Entries {
		if e.KeyHash == keyHash && e.Stage == stage {
			return e.Blob, true
		}
	}
	return nil, false
}
