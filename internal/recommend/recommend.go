// Package recommend holds the remediation list printed after every analysis.
// The list is fixed text; it is not derived from the findings of the run.
package recommend

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Recommendation is one remediation entry.
type Recommendation struct {
	Priority Priority
	Category string
	Issue    string
	Impact   string
	Action   string
}

var static = [...]Recommendation{
	{
		Priority: PriorityHigh,
		Category: "Configuration Orphans",
		Issue:    "apollo_frontend_config_api and apollo_backend_config_jwt_secret are orphaned",
		Impact:   "Configuration nodes are critical for application functionality",
		Action:   "Connect config nodes to their consuming components/services",
	},
	{
		Priority: PriorityHigh,
		Category: "Entity Components",
		Issue:    "apollo_entity_react_frontend is orphaned",
		Impact:   "Architectural entities should be connected to implementation layers",
		Action:   "Link entity to apollo_frontend_app or apollo_layer_ux",
	},
	{
		Priority: PriorityMedium,
		Category: "2FA Flow Completeness",
		Issue:    "Notification service may be disconnected from 2FA flow",
		Impact:   "OTP delivery mechanism needs clear integration points",
		Action:   "Verify notification service connections to 2FA endpoints",
	},
	{
		Priority: PriorityMedium,
		Category: "Cross-Layer Connections",
		Issue:    "Some design atoms may lack direct code implementations",
		Impact:   "Potential gaps between design and implementation",
		Action:   "Audit design-to-code traceability for all atoms",
	},
	{
		Priority: PriorityLow,
		Category: "Token Management",
		Issue:    "JWT token property connectivity",
		Impact:   "Token lifecycle management clarity",
		Action:   "Ensure JWT token has clear usage connections",
	},
}

// Static returns the five remediation entries in print order.
// Each call returns a fresh slice.
func Static() []Recommendation {
	out := make([]Recommendation, len(static))
	copy(out, static[:])
	return out
}
