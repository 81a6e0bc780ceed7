package auth

// Known OAuth scopes used by the insights service.
const (
	ScopeInsightsRead = "insights:read"
)
