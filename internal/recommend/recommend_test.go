package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/ontocheck/internal/recommend"
)

func TestStatic(t *testing.T) {
	recs := recommend.Static()
	require.Len(t, recs, 5)

	var priorities []recommend.Priority
	for _, r := range recs {
		priorities = append(priorities, r.Priority)
		assert.NotEmpty(t, r.Category)
		assert.NotEmpty(t, r.Issue)
		assert.NotEmpty(t, r.Impact)
		assert.NotEmpty(t, r.Action)
	}
	assert.Equal(t, []recommend.Priority{
		recommend.PriorityHigh,
		recommend.PriorityHigh,
		recommend.PriorityMedium,
		recommend.PriorityMedium,
		recommend.PriorityLow,
	}, priorities)
	assert.Equal(t, "Configuration Orphans", recs[0].Category)
	assert.Equal(t, "Token Management", recs[4].Category)
}

func TestStatic_ReturnsCopy(t *testing.T) {
	first := recommend.Static()
	first[0].Category = "mutated"

	second := recommend.Static()
	assert.Equal(t, "Configuration Orphans", second[0].Category)
}
