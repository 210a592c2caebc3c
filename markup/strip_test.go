package markup

import "testing"

func TestStripAll(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain text", "plain text"},
		{"&cHello &lWorld&r!", "Hello World!"},
		{"§aGreen", "Green"},
		{"&#ff0000:0000ffGrad &#00ff00Hex &*Rain &(http://x)[Link]", "Grad Hex Rain Link"},
		{"&#red:blue:gold Names", " Names"},
		{"&#red:blue:goldNames", ""},
		{"&zunknown", "&zunknown"},
		{"&&cc", ""},
		{"&(u)[&cred]", "red"},
		{"#ff0000 stays", "#ff0000 stays"},
	}
	for _, tc := range cases {
		if got := StripAll(tc.in); got != tc.want {
			t.Fatalf("StripAll(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripAll_Idempotent(t *testing.T) {
	inputs := []string{
		"", "&", "&&", "&&cc", "&&&ccc", "&#&#ff0000ff0000",
		"&(&(u)[x])[y]", "&&#ff0000:0000ff#ff0000:0000ff",
		"§§aa&*&**", "&cmixed &#123456text &(a)[b] &r",
	}
	for _, in := range inputs {
		once := StripAll(in)
		if twice := StripAll(once); twice != once {
			t.Fatalf("StripAll not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStripAll_MatchesParsedText(t *testing.T) {
	for _, in := range []string{"&cHello &lWorld", "&*rainbow &#ff0000red", "&#ff0000:0000ffgrad"} {
		if got, want := StripAll(in), Parse(in, nil).Plain(); got != want {
			t.Fatalf("%q: strip %q, parse %q", in, got, want)
		}
	}
}

func TestStripLegacy(t *testing.T) {
	cases := []struct{ in, want string }{
		{"&cHi &lthere&r", "Hi there"},
		{"&cHi &#ff0000x &*y &(u)[t]", "Hi &#ff0000x &*y &(u)[t]"},
		{"§AUpper", "Upper"},
		{"&kobf", "&kobf"},
	}
	for _, tc := range cases {
		if got := StripLegacy(tc.in); got != tc.want {
			t.Fatalf("StripLegacy(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}
