package vshlib

import (
	"bytes"
	"testing"

	"github.com/vultra-engine/shaderc/internal/vstypes"
)

func sampleEntries() []Entry {
	return []Entry{
		{KeyHash: 300, Stage: vstypes.StageFragment, Blob: []byte("frag-variant-b")},
		{KeyHash: 100, Stage: vstypes.StageVertex, Blob: []byte("vertex-blob")},
		{KeyHash: 100, Stage: vstypes.StageFragment, Blob: []byte("frag-variant-a")},
	}
}

func TestRoundTripAndLookup(t *testing.T) {
	entries := sampleEntries()
	data, err := Encode(entries, []byte("keyword set-based-engine-keywords"))
	if err != nil {
		t.Fatal(err)
	}
	lib, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(lib.Entries), len(entries))
	}
	for _, e := range entries {
		blob, ok := lib.Lookup(e.KeyHash, e.Stage)
		if !ok {
			t.Fatalf("lookup(%d,%v) missed", e.KeyHash, e.Stage)
		}
		if !bytes.Equal(blob, e.Blob) {
			t.Fatalf("lookup(%d,%v) = %q, want %q", e.KeyHash, e.Stage, blob, e.Blob)
		}
	}
	if !bytes.Equal(lib.EngineKeywords, []byte("keyword set-based-engine-keywords")) {
		t.Fatal("engine keywords blob mismatch")
	}
}

func TestTOCSortedByKeyHashThenStage(t *testing.T) {
	data, err := Encode(sampleEntries(), nil)
	if err != nil {
		t.Fatal(err)
	}
	lib, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(lib.Entries); i++ {
		a, b := lib.Entries[i-1], lib.Entries[i]
		if a.KeyHash > b.KeyHash || (a.KeyHash == b.KeyHash && a.Stage > b.Stage) {
			t.Fatalf("toc not sorted at index %d: %+v then %+v", i, a, b)
		}
	}
}

func TestEncodeRejectsZeroKeyHash(t *testing.T) {
	_, err := Encode([]Entry{{KeyHash: 0, Stage: vstypes.StageVertex, Blob: []byte("x")}}, nil)
	if err == nil {
		t.Fatal("expected InvalidArgument for zero keyHash")
	}
}

func TestEncodeRejectsInvalidStage(t *testing.T) {
	_, err := Encode([]Entry{{KeyHash: 1, Stage: vstypes.Stage(200), Blob: []byte("x")}}, nil)
	if err == nil {
		t.Fatal("expected InvalidArgument for invalid stage")
	}
}

func TestDecodeBadMagic(t *testing.T) {
	data, _ := Encode(sampleEntries(), nil)
	data[0] = 'Z'
	if _, err := Decode(data); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeNoEngineKeywords(t *testing.T) {
	data, err := Encode(sampleEntries(), nil)
	if err != nil {
		t.Fatal(err)
	}
	lib, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if lib.EngineKeywords != nil {
		t.Fatal("expected nil engine keywords when none were written")
	}
}

func TestDedupSignatureDistinguishesStage(t *testing.T) {
	a := DedupSignature(42, vstypes.StageVertex)
	b := DedupSignature(42, vstypes.StageFragment)
	if a == b {
		t.Fatal("expected distinct signatures for distinct stages")
	}
	c := DedupSignature(42, vstypes.StageVertex)
	if a != c {
		t.Fatal("expected deterministic signature for identical inputs")
	}
}
