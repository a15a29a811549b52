package model

import (
	"bytes"
	"encoding/json"
)

// InputError reports an empty or malformed hook payload.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *InputError) Unwrap() error { return e.Err }

// hookPayload mirrors the subset of the hook JSON schema we read.
type hookPayload struct {
	SessionID        string  `json:"session_id"`
	CWD              *string `json:"cwd"`
	HookEventName    *string `json:"hook_event_name"`
	ToolName         *string `json:"tool_name"`
	Source           *string `json:"source"`
	NotificationType *string `json:"notification_type"`
	AgentType        *string `json:"agent_type"`
	Reason           *string `json:"reason"`
	Trigger          *string `json:"trigger"`
}

// ParsePayload converts raw stdin bytes into a HookInput.
func ParsePayload(data []byte) (*HookInput, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &InputError{Msg: "no input received on stdin"}
	}

	var p hookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &InputError{Msg: "parse hook input JSON", Err: err}
	}

	// Both keys must be present; empty values are allowed.
	if p.CWD == nil {
		return nil, &InputError{Msg: "missing required field: cwd"}
	}
	if p.HookEventName == nil {
		return nil, &InputError{Msg: "missing required field: hook_event_name"}
	}

	return &HookInput{
		CWD:              *p.CWD,
		HookEventName:    *p.HookEventName,
		SessionID:        p.SessionID,
		ToolName:         p.ToolName,
		Source:           p.Source,
		NotificationType: p.NotificationType,
		AgentType:        p.AgentType,
		Reason:           p.Reason,
		Trigger:          p.Trigger,
	}, nil
}
