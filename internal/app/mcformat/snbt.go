package mcformat

import (
	"github.com/jmoiron/simplecolor/markup"
	"github.com/jmoiron/simplecolor/snbt"
)

// Components converts msg into game text components, one per segment.
func Components(msg markup.Message) []snbt.Compound {
	segs := msg.Segments()
	out := make([]snbt.Compound, 0, len(segs))
	for _, seg := range segs {
		c := snbt.Compound{{Key: "text", Value: seg.Text}}
		if seg.HasColor {
			c.Set("color", seg.Color.String())
		}
		if seg.Style.Bold {
			c.Set("bold", snbt.Bool(true))
		}
		if seg.Style.Italic {
			c.Set("italic", snbt.Bool(true))
		}
		if seg.Style.Underline {
			c.Set("underlined", snbt.Bool(true))
		}
		if seg.Style.Monospace {
			c.Set("monospace", snbt.Bool(true))
		}
		if seg.IsLink() {
			c.Set("clickEvent", snbt.Compound{
				{Key: "action", Value: "open_url"},
				{Key: "value", Value: seg.Link},
			})
		}
		out = append(out, c)
	}
	return out
}

// SNBT renders msg as a single root component whose children are the
// message's segments.
func SNBT(msg markup.Message) (string, error) {
	root := snbt.Compound{
		{Key: "text", Value: ""},
		{Key: "extra", Value: Components(msg)},
	}
	return snbt.Marshal(root)
}
