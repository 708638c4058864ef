package chatrequests

// ChatRequest represents one chat turn. Image carries an image attachment
// as a URL or data URI; Model defaults to the configured text model.
type ChatRequest struct {
	UserID         uint   `json:"userId" binding:"required"`
	Message        string `json:"message" binding:"required"`
	ConversationID *uint  `json:"conversationId,omitempty"`
	Model          string `json:"model,omitempty"`
	Image          string `json:"image,omitempty"`
}
