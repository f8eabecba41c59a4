package schema

import "hash/fnv"

// palette is the fixed set of colors assigned to synthesized types.
var palette = []string{
	"#EF9A9A", // red
	"#F6BF62", // amber
	"#E3E34B", // yellow
	"#A4E86B", // green
	"#6BD6E8", // cyan
	"#6B9BE8", // blue
	"#A78BFA", // purple
	"#E86BC8", // pink
	"#B0B4BC", // gray
}

// ColorFor returns the deterministic palette color for a type id, so
// repeated imports of the same input assign the same color.
func ColorFor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return palette[h.Sum32()%uint32(len(palette))]
}
