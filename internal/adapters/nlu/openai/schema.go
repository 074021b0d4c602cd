package openai

// Request/response shapes for the chat completions endpoint, reduced to
// the fields this adapter uses.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// replySchema is the strict JSON contract the system prompt demands from
// the model.
type replySchema struct {
	Type     string  `json:"type"`
	Answer   *string `json:"answer"`
	Intent   *string `json:"intent"`
	Filename *string `json:"filename"`
	Content  *string `json:"content"`
}
