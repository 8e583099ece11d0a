package response_models

// RefreshResponse is the batched snapshot the client pulls on load and on
// every opportunistic refresh. Users is populated only for admin sessions.
type RefreshResponse struct {
	Config     SiteConfigResponse `json:"config"`
	Plans      []PlanResponse     `json:"plans"`
	Categories []CategoryResponse `json:"categories"`
	Posts      []PostResponse     `json:"posts"`
	Users      []AccountResponse  `json:"users,omitempty"`
}
