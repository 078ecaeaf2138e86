package responses

type SubmitIntakeStepResponse struct {
	NextStep       string `json:"next_step"`
	PendingResults bool   `json:"pending_results,omitempty"`
}

type IntakeProgressResponse struct {
	CurrentStep    int                 `json:"current_step"`
	Answers        map[int]interface{} `json:"answers"`
	PendingResults bool                `json:"pending_results"`
}
