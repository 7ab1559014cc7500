package enginekw

import "testing"

func TestParseBasic(t *testing.T) {
	src := `# engine keywords
keyword permute global USE_SHADOW=0
set USE_SHADOW=1
set USE_SHADOW=1

set PLATFORM=desktop
`
	f, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Keywords) != 1 || f.Keywords[0].Name != "USE_SHADOW" {
		t.Fatalf("got %+v", f.Keywords)
	}
	if f.Set["USE_SHADOW"] != "1" || f.Set["PLATFORM"] != "desktop" {
		t.Fatalf("got %+v", f.Set)
	}
}

func TestParseUnknownDirective(t *testing.T) {
	_, err := Parse("bogus foo\n")
	if err == nil {
		t.Fatal("expected error")
	}
}
