package ontology

import "fmt"

// MissingKeyError reports an identifier that is referenced (as a target, root,
// or flow component) but absent from the node table.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("node %q not found in node table", e.Key)
}
