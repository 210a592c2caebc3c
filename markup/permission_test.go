package markup

import "testing"

func TestGate(t *testing.T) {
	if Gate(nil) != AllowAll {
		t.Fatalf("nil subject should allow everything")
	}

	cases := []struct {
		name  string
		held  []string
		check string
		want  bool
	}{
		{"exact", []string{"simplecolor.color.red"}, Red.Capability(), true},
		{"missing", []string{"simplecolor.color.red"}, Blue.Capability(), false},
		{"bypass", []string{Bypass}, LinkCapability, true},
		{"all colors", []string{AllColors}, Gold.Capability(), true},
		{"all colors covers hex", []string{AllColors}, HexCapability, true},
		{"all colors not formats", []string{AllColors}, Bold.Capability(), false},
		{"all colors not links", []string{AllColors}, LinkCapability, false},
		{"all formats", []string{AllFormats}, Reset.Capability(), true},
		{"all formats not colors", []string{AllFormats}, Red.Capability(), false},
	}
	for _, tc := range cases {
		c := Gate(NewCapabilities(tc.held...))
		if got := c.Allowed(tc.check); got != tc.want {
			t.Fatalf("%s: Allowed(%q) = %v, want %v", tc.name, tc.check, got, tc.want)
		}
	}
}

func TestNewCapabilities(t *testing.T) {
	c := NewCapabilities(" simplecolor.link ", "", "  ")
	if len(c) != 1 || !c.HasPermission(LinkCapability) {
		t.Fatalf("got %v", c)
	}
}
