package model

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single turn in the conversation history
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UserContext identifies the signed-in caller. It is supplied by the
// frontend gateway and trusted as-is; the assistant performs no
// authentication of its own.
type UserContext struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"user_type"` // "owner" or "traveler"
}

// ChatRequest represents an inbound chat turn
type ChatRequest struct {
	Message             string        `json:"message" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
	UserContext         *UserContext  `json:"user_context,omitempty"`
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// ChatLog records a handled chat turn for analytics
type ChatLog struct {
	ID             string `json:"id"`
	Message        string `json:"message"`
	Intent         string `json:"intent"`
	ResultCount    int    `json:"result_count"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}
