package arch

// BlockType is one node in the block-type tree of a reconfigurable fabric.
// A block type either offers one or more Modes (each holding child block
// types) or is a primitive leaf with no modes at all. The tree is built by
// an external architecture compiler; this package only models and reads it.
type BlockType struct {
	Name   string
	Modes  []*Mode
	Ports  []*Port
	Parent *Mode // nil for a top-level root
}

// Mode is one alternative internal structure of a multi-mode block type.
// Exactly one mode per block type is physically realized in silicon.
type Mode struct {
	Name     string
	Parent   *BlockType
	Children []*BlockType
}

// Port is a named bundle of pins on a block type.
type Port struct {
	Name  string
	Width int
	Owner *BlockType
}

// NewBlockType creates a block type with no modes or ports.
func NewBlockType(name string) *BlockType {
	return &BlockType{Name: name}
}

// IsPrimitive reports whether the block type is a leaf with no modes.
func (bt *BlockType) IsPrimitive() bool {
	return len(bt.Modes) == 0
}

// IsRoot reports whether the block type sits at the top of its tree.
func (bt *BlockType) IsRoot() bool {
	return bt.Parent == nil
}

// FindMode returns the mode with the given name, or nil if absent.
func (bt *BlockType) FindMode(name string) *Mode {
	for _, m := range bt.Modes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// FindPort returns the port with the given name, or nil if absent.
func (bt *BlockType) FindPort(name string) *Port {
	for _, p := range bt.Ports {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AddMode appends a new empty mode and returns it. Mode names must be
// unique within a block type; callers assembling fixtures are trusted.
func (bt *BlockType) AddMode(name string) *Mode {
	m := &Mode{Name: name, Parent: bt}
	bt.Modes = append(bt.Modes, m)
	return m
}

// AddPort appends a new port of the given width and returns it.
func (bt *BlockType) AddPort(name string, width int) *Port {
	p := &Port{Name: name, Width: width, Owner: bt}
	bt.Ports = append(bt.Ports, p)
	return p
}

// FindChild returns the child block type with the given name, or nil.
func (m *Mode) FindChild(name string) *BlockType {
	for _, c := range m.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddChild appends a new child block type under the mode and returns it.
func (m *Mode) AddChild(name string) *BlockType {
	c := &BlockType{Name: name, Parent: m}
	m.Children = append(m.Children, c)
	return c
}
