package hashing

import "testing"

func TestHashDeterministic(t *testing.T) {
	a := HashString("hello")
	b := HashString("hello")
	if a != b {
		t.Fatalf("expected deterministic hash, got %d != %d", a, b)
	}
}

func TestHashDistinguishesInputs(t *testing.T) {
	if HashString("a") == HashString("b") {
		t.Fatal("expected distinct hashes for distinct strings")
	}
}

func TestWordsChaining(t *testing.T) {
	words := []uint32{0x07230203, 0x00010500, 0, 0, 0}
	h1 := HashWords(words)
	h2 := Words(Seed(), words)
	if h1 != h2 {
		t.Fatalf("HashWords and Words(Seed(), ...) diverged: %d != %d", h1, h2)
	}
}

func TestChainOrderMatters(t *testing.T) {
	h := Seed()
	h = Uint64(h, 1)
	h = Uint32(h, 2)
	h2 := Seed()
	h2 = Uint32(h2, 2)
	h2 = Uint64(h2, 1)
	if h == h2 {
		t.Fatal("expected chain order to affect the result")
	}
}

func TestSortByKeys(t *testing.T) {
	type pair struct{ a, b int }
	items := []pair{{2, 1}, {1, 2}, {1, 1}}
	SortByKeys(items, func(p pair) int { return p.a }, func(p pair) int { return p.b })
	want := []pair{{1, 1}, {1, 2}, {2, 1}}
	for i, w := range want {
		if items[i] != w {
			t.Fatalf("index %d: got %+v want %+v", i, items[i], w)
		}
	}
}
