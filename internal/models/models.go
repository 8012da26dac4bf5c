package models

// WSFrame is the envelope for every message on the collaboration socket.
type WSFrame struct {
	Type string      `json:"type"` // "join","code-change","language-change","sync-code","joined","disconnected","error"
	Data interface{} `json:"data"`
}

/*** Collaboration session state ***/

// RoomState is the latest known document for a room. Only the newest value is
// kept; concurrent edits resolve last-write-wins.
type RoomState struct {
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
}

type JoinRequest struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

type CodeChange struct {
	RoomID string `json:"roomId,omitempty"`
	Code   string `json:"code"`
}

type LanguageChange struct {
	RoomID   string `json:"roomId,omitempty"`
	Language string `json:"language"`
}

// Member is one entry of a room roster: a connection joined with the display
// name it registered at join time.
type Member struct {
	ConnectionID string `json:"connectionId"`
	Username     string `json:"username"`
}

// JoinedEvent announces an arrival. The same payload goes to the joiner and
// to the rest of the room: the joiner learns the full roster, everyone else
// learns who arrived plus the refreshed roster.
type JoinedEvent struct {
	Members      []Member `json:"members"`
	Username     string   `json:"username"`
	ConnectionID string   `json:"connectionId"`
}

type DisconnectedEvent struct {
	ConnectionID string `json:"connectionId"`
	Username     string `json:"username"`
}

/*** Code analysis ***/

type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// CodeIssue is a single finding from the line scanners.
type CodeIssue struct {
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error" or "warning"
	Code     string `json:"code"`
}

type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // "high" or "medium"
	Example     string `json:"example"`
}

type AnalyzeResponse struct {
	Errors      []CodeIssue  `json:"errors"`
	Suggestions []Suggestion `json:"suggestions"`
	HasErrors   bool         `json:"hasErrors"`
}
