package form

import (
	"github.com/muurk/formnav/internal/config"
	"github.com/muurk/formnav/internal/navigator"
	"github.com/muurk/formnav/internal/viewtree"
)

const defaultGroup = "fields"

// group is a run of fields sharing a container node.
type group struct {
	name   string
	node   *viewtree.Node
	fields []Field
}

// layout builds the view tree for spec. Fields with the same Group share a
// container; a scrolling form places every container in one ScrollList so
// navigation runs across groups.
func layout(spec *config.FormSpec, ring *focusRing) (*viewtree.Tree, []*group, []Field) {
	root := viewtree.NewContainer(spec.Name, navigator.Rect{Width: MinTerminalWidth})

	parent := root
	if spec.Scroll {
		parent = root.Add(viewtree.NewScrollList(spec.Name+"/list", navigator.Rect{Y: 2, Width: MinTerminalWidth}))
	}

	var groups []*group
	byName := make(map[string]*group)
	fields := make([]Field, 0, len(spec.Fields))

	for _, fs := range spec.Fields {
		name := fs.Group
		if name == "" {
			name = defaultGroup
		}
		g, ok := byName[name]
		if !ok {
			g = &group{name: name}
			byName[name] = g
			groups = append(groups, g)
		}
		f := newField(fs, ring)
		g.fields = append(g.fields, f)
		fields = append(fields, f)
	}

	y := 0
	for _, g := range groups {
		height := 0
		for _, f := range g.fields {
			frame := f.Node().Frame
			if bottom := frame.Y + frame.Height; bottom > height {
				height = bottom
			}
		}
		// One row for the group heading
		g.node = parent.Add(viewtree.NewContainer(g.name, navigator.Rect{
			Y: y + 1, Width: MinTerminalWidth, Height: height,
		}))
		for _, f := range g.fields {
			g.node.Add(f.Node())
		}
		y += height + 1
	}

	return viewtree.New(root), groups, fields
}
