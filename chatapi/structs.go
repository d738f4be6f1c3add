package chatapi

type KoboldRequest struct {
	Prompt      string  `json:"prompt"`
	MaxLength   uint    `json:"max_length"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type KoboldResponse struct {
	Results []struct {
		Text string `json:"text"`
	} `json:"results"`
}

type OpenAIRequest struct {
	Model       string  `json:"model,omitempty"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   uint    `json:"max_tokens"`
	TopP        float64 `json:"top_p"`
	User        string  `json:"user,omitempty"`
}

type OpenAIResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

type ModelRequest struct {
	Action    string `json:"action"`
	ModelName string `json:"model_name,omitempty"`
}
