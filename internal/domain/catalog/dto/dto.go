// Package dto contains request/response structures between delivery and usecase
package dto

// StartRequest carries /start command data
type StartRequest struct {
	UserID    int64
	Username  string
	FirstName string
}

// CommandResponse is a plain text reply to a command
type CommandResponse struct {
	Message string
}

// FlowInput is one inbound message fed to the conversation state machine.
// Exactly one of Text, PhotoURL, File is expected to be set.
type FlowInput struct {
	ChatID   int64
	UserID   int64
	Text     string
	PhotoURL string
	File     *FlowFile
}

// FlowFile carries an uploaded document or video
type FlowFile struct {
	FileID   string
	FileName string
	FileSize int64
}

// FlowReply is the state machine's answer to one input
type FlowReply struct {
	// Handled is false when the chat has no active conversation
	Handled bool
	Message string
}

// SearchDramaResponse points the user at the website search page
type SearchDramaResponse struct {
	Message    string
	WebsiteURL string
}

// GroupSearchRequest carries a group message to match against the catalog
type GroupSearchRequest struct {
	ChatID int64
	Text   string
}

// GroupSearchResult is a catalog match for a group search; nil result means miss
type GroupSearchResult struct {
	Name        string
	ChannelLink string
}

// BroadcastRequest carries a /broadcast command
type BroadcastRequest struct {
	UserID     int64
	FromChatID int64
	MessageID  int
	HasReply   bool
}

// BroadcastResponse reports the broadcast outcome
type BroadcastResponse struct {
	Message string
	Sent    int
}

// RemoveItem is one removable record shown on the /remove keyboard
type RemoveItem struct {
	ID   string
	Name string
}

// RemoveListResponse lists removable records
type RemoveListResponse struct {
	Items []RemoveItem
}
