package upstream

// Wire shapes for the match feed API. Only the fields the dashboard consumes
// are mapped.

type teamDTO struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type matchDTO struct {
	MatchID     string `json:"match_id"`
	Game        string `json:"game"`
	Competition string `json:"competition_name"`
	Status      string `json:"status"`
	StartedAt   int64  `json:"started_at"` // unix seconds
	Teams       struct {
		Home teamDTO `json:"home"`
		Away teamDTO `json:"away"`
	} `json:"teams"`
}

type matchListDTO struct {
	Items []matchDTO `json:"items"`
}
