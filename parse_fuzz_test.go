package arith

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("(((")
	f.Add("2..5")
	f.Fuzz(func(t *testing.T, s string) {
		if Validate(s) != nil {
			return
		}
		p := parser{src: stripspace(s), ctx: newctx(nil)}
		_, err := p.expression()
		if p.pos > len(p.src) {
			t.Fatalf("%q: cursor %d past end %d", s, p.pos, len(p.src))
		}
		if err == nil && p.depth != 0 {
			t.Fatalf("%q: depth %d after successful parse", s, p.depth)
		}
	})
}
