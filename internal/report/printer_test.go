package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/ontocheck/internal/config"
	"github.com/gyaneshwarpardhi/ontocheck/internal/flow"
	"github.com/gyaneshwarpardhi/ontocheck/internal/ontology"
	"github.com/gyaneshwarpardhi/ontocheck/internal/orphan"
	"github.com/gyaneshwarpardhi/ontocheck/internal/recommend"
	"github.com/gyaneshwarpardhi/ontocheck/internal/report"
)

func analyze(t *testing.T) (*config.Dataset, *ontology.Graph, *orphan.Report) {
	t.Helper()
	ds, err := config.Default()
	require.NoError(t, err)
	g := ontology.Build(ds)
	r, err := orphan.Analyze(g)
	require.NoError(t, err)
	return ds, g, r
}

func TestPrinter_Orphans(t *testing.T) {
	ds, _, r := analyze(t)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.Orphans(ds.Title, ds.Name, r)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", 80)+"\nAPOLLO LAUNCHPAD ORPHAN NODE ANALYSIS\n"))
	for _, want := range []string{
		"TOTAL APOLLO NODES: 65\n",
		"ROOT NODES (excluded): 4\n",
		"NODES WITH INCOMING EDGES: 57\n",
		"ORPHANED NODES: 4\n",
		"FUNCTIONAL ONTOLOGY - 0 orphaned nodes:\n" + strings.Repeat("-", 50) + "\n  ✓ No orphaned nodes found\n",
		"ARCHITECTURE ONTOLOGY - 1 orphaned nodes:\n",
		"CODE ONTOLOGY - 3 orphaned nodes:\n",
		"  • apollo_frontend_config_api\n    Name: api.config.ts\n    Level: configurations\n",
		"CONFIGURATION NODES: 2 orphaned\n",
		"  • apollo_backend_config_jwt_secret: jwt.secret\n",
		"REACT-SPECIFIC ELEMENTS: 0 orphaned\n",
		"ENTITY/COMPONENT NODES: 1 orphaned\n  • apollo_entity_react_frontend: React Frontend\n",
	} {
		assert.Contains(t, out, want)
	}
	// Plain writers get no escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinter_Flow(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf)
	p.Flow("2FA Authentication Flow", []flow.Status{
		{ID: "apollo_service_notification", Name: "System Notification Service", State: flow.StateConnected},
		{ID: "apollo_page_2fa", Name: "2FA Verification Page", State: flow.StateOrphaned},
	})
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "2FA AUTHENTICATION FLOW COMPLETENESS ANALYSIS\n")
	assert.Contains(t, out, "✓ CONNECTED: System Notification Service\n           ID: apollo_service_notification\n")
	assert.Contains(t, out, "✗ ORPHANED: 2FA Verification Page\n           ID: apollo_page_2fa\n")
}

func TestPrinter_RecommendationsAndSummary(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf)
	p.Recommendations(recommend.Static())
	p.Summary(4)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "IMPLEMENTATION RECOMMENDATIONS")
	assert.Contains(t, out, "\n1. Configuration Orphans [HIGH PRIORITY]\n   Issue: apollo_frontend_config_api and apollo_backend_config_jwt_secret are orphaned\n")
	assert.Contains(t, out, "\n5. Token Management [LOW PRIORITY]\n")
	assert.Contains(t, out, "   Action: Ensure JWT token has clear usage connections\n")
	assert.True(t, strings.HasSuffix(out, "ANALYSIS COMPLETE\n"+strings.Repeat("=", 60)+
		"\nTotal orphaned nodes found: 4\nReview recommendations above for remediation steps.\n"))
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(b []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestPrinter_StickyError(t *testing.T) {
	w := &failingWriter{}
	p := report.New(w)
	p.Summary(0)
	p.Recommendations(recommend.Static())

	require.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
}
