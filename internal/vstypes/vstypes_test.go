package vstypes

import "testing"

func TestStageWireIndex(t *testing.T) {
	cases := []struct {
		s    Stage
		want uint8
	}{
		{StageVertex, 0}, {StageFragment, 1}, {StageCompute, 2},
		{StageRayIntersection, 9},
	}
	for _, c := range cases {
		if uint8(c.s) != c.want {
			t.Errorf("Stage %v: got wire index %d, want %d", c.s, c.s, c.want)
		}
	}
}

func TestStageFromExtension(t *testing.T) {
	s, ok := StageFromExtension("frag")
	if !ok || s != StageFragment {
		t.Fatalf("expected frag -> StageFragment, got %v ok=%v", s, ok)
	}
	if _, ok := StageFromExtension("nope"); ok {
		t.Fatal("expected unknown extension to fail")
	}
}

func TestColorMaskFromLetters(t *testing.T) {
	m, ok := ColorMaskFromLetters("RGBA")
	if !ok || m != 0b1111 {
		t.Fatalf("RGBA: got %b ok=%v", m, ok)
	}
	m, ok = ColorMaskFromLetters("R")
	if !ok || m != 0b0001 {
		t.Fatalf("R: got %b ok=%v", m, ok)
	}
	if _, ok := ColorMaskFromLetters("X"); ok {
		t.Fatal("expected invalid letter to fail")
	}
}

func TestSemanticFromName(t *testing.T) {
	s, ok := SemanticFromName("BaseColor")
	if !ok || s != SemanticBaseColor {
		t.Fatalf("got %v ok=%v", s, ok)
	}
	if _, ok := SemanticFromName("NotASemantic"); ok {
		t.Fatal("expected unknown semantic to fail")
	}
}

func TestDefaultRenderState(t *testing.T) {
	rs := DefaultRenderState()
	if !rs.DepthTest || !rs.DepthWrite || rs.DepthFunc != CompareLessEqual || rs.Cull != CullBack {
		t.Fatalf("unexpected defaults: %+v", rs)
	}
	if rs.ColorMask != ColorMaskRGBA || rs.AlphaToCoverage {
		t.Fatalf("unexpected defaults: %+v", rs)
	}
	if rs.Explicit {
		t.Fatal("expected Explicit=false by default")
	}
}
