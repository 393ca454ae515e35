package ontology

// Type is the ontology layer a node belongs to.
type Type string

const (
	TypeFunctional   Type = "functional"
	TypeDesign       Type = "design"
	TypeArchitecture Type = "architecture"
	TypeCode         Type = "code"
)

// Types returns the four layers in their declared order.
func Types() []Type {
	return []Type{TypeFunctional, TypeDesign, TypeArchitecture, TypeCode}
}

// Known reports whether t is one of the four declared layers.
func (t Type) Known() bool {
	switch t {
	case TypeFunctional, TypeDesign, TypeArchitecture, TypeCode:
		return true
	}
	return false
}

// Node is one entry of the node table.
type Node struct {
	ID    string
	Type  Type
	Level string
	Name  string
}
