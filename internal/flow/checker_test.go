package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/ontocheck/internal/config"
	"github.com/gyaneshwarpardhi/ontocheck/internal/flow"
	"github.com/gyaneshwarpardhi/ontocheck/internal/ontology"
)

func TestCheck_Apollo2FA(t *testing.T) {
	ds, err := config.Default()
	require.NoError(t, err)
	g := ontology.Build(ds)
	components := ds.Flow(config.DefaultFlow).Components

	statuses, err := flow.Check(g, components)
	require.NoError(t, err)
	require.Len(t, statuses, 13)

	for i, s := range statuses {
		assert.Equal(t, components[i], s.ID, "order is preserved")
		if g.IsTarget(s.ID) {
			assert.Equal(t, flow.StateConnected, s.State, s.ID)
		} else {
			assert.Equal(t, flow.StateOrphaned, s.State, s.ID)
		}
	}

	last := statuses[12]
	assert.Equal(t, "apollo_service_notification", last.ID)
	assert.Equal(t, "System Notification Service", last.Name)
	assert.Equal(t, flow.StateConnected, last.State)

	connected, orphaned := flow.Summary(statuses)
	assert.Equal(t, 13, connected)
	assert.Zero(t, orphaned)
}

func TestCheck_NoRootExemption(t *testing.T) {
	g := ontology.Build(&config.Dataset{
		Nodes: []config.NodeDef{
			{ID: "root", Type: "functional", Level: "root", Name: "Root"},
			{ID: "step", Type: "functional", Level: "steps", Name: "Step"},
			{ID: "page", Type: "design", Level: "pages", Name: "Page"},
		},
		Targets: []string{"step"},
		Roots:   []string{"root"},
	})

	statuses, err := flow.Check(g, []string{"root", "step", "page"})
	require.NoError(t, err)
	assert.Equal(t, []flow.Status{
		{ID: "root", Name: "Root", State: flow.StateOrphaned},
		{ID: "step", Name: "Step", State: flow.StateConnected},
		{ID: "page", Name: "Page", State: flow.StateOrphaned},
	}, statuses)

	connected, orphaned := flow.Summary(statuses)
	assert.Equal(t, 1, connected)
	assert.Equal(t, 2, orphaned)
}

func TestCheck_MissingKey(t *testing.T) {
	g := ontology.Build(&config.Dataset{
		Nodes:   []config.NodeDef{{ID: "a", Type: "code", Name: "A"}},
		Targets: []string{"ghost"},
	})

	_, err := flow.Check(g, []string{"a", "ghost"})
	require.Error(t, err)
	var mk *ontology.MissingKeyError
	require.True(t, errors.As(err, &mk))
	assert.Equal(t, "ghost", mk.Key)
}
