package config

// Dataset is the top-level YAML structure describing one curated ontology graph.
type Dataset struct {
	Name    string    `yaml:"name"`
	Title   string    `yaml:"title"`
	Nodes   []NodeDef `yaml:"nodes"`
	Targets []string  `yaml:"targets"` // ids that receive at least one edge
	Roots   []string  `yaml:"roots"`   // layer tops, never orphans
	Flows   []FlowDef `yaml:"flows"`
}

// NodeDef is one entry of the node table.
type NodeDef struct {
	ID    string `yaml:"id"`
	Type  string `yaml:"type"`  // functional | design | architecture | code
	Level string `yaml:"level"` // free-text stage label within the layer
	Name  string `yaml:"name"`
}

// FlowDef lists the node ids that make up one end-to-end scenario.
type FlowDef struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Components []string `yaml:"components"`
}

// Flow returns the flow with the given id, or nil.
func (d *Dataset) Flow(id string) *FlowDef {
	for i := range d.Flows {
		if d.Flows[i].ID == id {
			return &d.Flows[i]
		}
	}
	return nil
}
