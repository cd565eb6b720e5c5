package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// StatusOutput wraps StatusResponse for huma operations.
type StatusOutput struct {
	Body StatusResponse
}

func statusOutput(status string) *StatusOutput {
	return &StatusOutput{Body: StatusResponse{Status: status}}
}
