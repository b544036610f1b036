package response_models

type ChatResponse struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}
