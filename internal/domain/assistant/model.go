package assistant

// ChatMessage is one turn of a conversation as sent by the client. Role is
// "user" or "model".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// DefaultQuote is served when the model is unavailable.
const DefaultQuote = "Build something amazing today."

// DefaultChatReply is served when the model fails mid-conversation.
const DefaultChatReply = "Sorry, I can't answer right now. Please try again in a moment."
