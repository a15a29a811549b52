// Package model defines the hook event received from the host and the
// records derived from it.
package model

import "time"

// HookInput is one hook payload. Only the fields used for matching are kept;
// everything else the host sends is ignored.
type HookInput struct {
	CWD           string
	HookEventName string
	SessionID     string

	ToolName         *string // PreToolUse, PostToolUse, PostToolUseFailure, PermissionRequest
	Source           *string // SessionStart
	NotificationType *string // Notification
	AgentType        *string // SubagentStart, SubagentStop
	Reason           *string // SessionEnd
	Trigger          *string // PreCompact
}

// Discriminant returns the payload field a matcher is evaluated against for
// the given event. Events without a discriminant, or payloads missing the
// field, yield "".
func (in *HookInput) Discriminant(event string) string {
	var v *string
	switch event {
	case "PreToolUse", "PostToolUse", "PostToolUseFailure", "PermissionRequest":
		v = in.ToolName
	case "SessionStart":
		v = in.Source
	case "SessionEnd":
		v = in.Reason
	case "Notification":
		v = in.NotificationType
	case "SubagentStart", "SubagentStop":
		v = in.AgentType
	case "PreCompact":
		v = in.Trigger
	}
	if v == nil {
		return ""
	}
	return *v
}

// Play is one successful dispatch as recorded in the play journal.
type Play struct {
	Event      string
	Melody     string
	ProjectDir string
	SessionID  string
	ToolName   string
	Volume     float64
	PlayedAt   time.Time
}

// Count is a grouped tally from the play journal.
type Count struct {
	Key      string
	Plays    int64
	LastPlay time.Time
}
