package dto

// StatsResponse carries the dashboard entity counts.
type StatsResponse struct {
	Users    int64 `json:"users"`
	Routes   int64 `json:"routes"`
	Units    int64 `json:"units"`
	Contacts int64 `json:"contacts"`
}
