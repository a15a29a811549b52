// Package dispatch runs one hook event through configuration lookup,
// matcher gating, melody resolution and playback.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hassha/internal/config"
	"hassha/internal/model"
	"hassha/internal/player"
)

// Outcome says how far a dispatch got. NoConfig, NoRule and NotMatched are
// silent successes.
type Outcome int

const (
	NoConfig Outcome = iota
	NoRule
	NotMatched
	Played
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NoConfig:
		return "no-config"
	case NoRule:
		return "no-rule"
	case NotMatched:
		return "not-matched"
	case Played:
		return "played"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Resolver turns a melody reference into a local audio file.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// HistoryAppender records a played melody in the recent-history log.
type HistoryAppender interface {
	Append(event, melody, projectDir string, toolName, matcher *string) error
}

// Journal records a played melody for long-term statistics.
type Journal interface {
	RecordPlay(p model.Play) error
}

// Deps are the collaborators of a Dispatcher. History and Journal may be nil.
type Deps struct {
	Cache   Resolver
	Player  player.Player
	History HistoryAppender
	Journal Journal
	Logger  *slog.Logger
	Now     func() time.Time
}

// Dispatcher handles hook events.
type Dispatcher struct {
	deps Deps
}

// New creates a Dispatcher.
func New(deps Deps) *Dispatcher {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Dispatcher{deps: deps}
}

// Dispatch handles one raw hook payload. eventName selects the rule; when
// empty the payload's hook_event_name is used. Only input, configuration,
// resolution and playback failures are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, eventName string, payload []byte) (Outcome, error) {
	log := d.deps.Logger

	in, err := model.ParsePayload(payload)
	if err != nil {
		return Failed, err
	}
	if eventName == "" {
		eventName = in.HookEventName
	}

	cfg, cfgPath, err := config.LoadProject(in.CWD)
	if err != nil {
		return Failed, err
	}
	if cfg == nil {
		log.Debug("no project config", "cwd", in.CWD)
		return NoConfig, nil
	}

	rule, ok := cfg.Rule(eventName)
	if !ok {
		log.Debug("no rule for event", "event", eventName, "config", cfgPath)
		return NoRule, nil
	}

	if rule.Matcher != nil {
		value := in.Discriminant(eventName)
		if !Match(*rule.Matcher, value) {
			log.Debug("matcher rejected event", "event", eventName, "matcher", *rule.Matcher, "value", value)
			return NotMatched, nil
		}
	}

	path, err := d.deps.Cache.Resolve(ctx, rule.Melody)
	if err != nil {
		return Failed, fmt.Errorf("resolve melody %q: %w", rule.Melody, err)
	}

	log.Info("playing melody", "event", eventName, "melody", rule.Melody, "path", path, "volume", rule.Volume)
	if err := d.deps.Player.Play(path, rule.Volume); err != nil {
		return Failed, err
	}

	d.record(eventName, in, rule)
	return Played, nil
}

// record writes history and journal entries. Failures are logged only.
func (d *Dispatcher) record(event string, in *model.HookInput, rule config.HookConfig) {
	log := d.deps.Logger

	if d.deps.History != nil {
		if err := d.deps.History.Append(event, rule.Melody, in.CWD, in.ToolName, rule.Matcher); err != nil {
			log.Debug("history append failed", "error", err)
		}
	}

	if d.deps.Journal != nil {
		p := model.Play{
			Event:      event,
			Melody:     rule.Melody,
			ProjectDir: in.CWD,
			SessionID:  in.SessionID,
			Volume:     rule.Volume,
			PlayedAt:   d.deps.Now(),
		}
		if in.ToolName != nil {
			p.ToolName = *in.ToolName
		}
		if err := d.deps.Journal.RecordPlay(p); err != nil {
			log.Debug("journal record failed", "error", err)
		}
	}
}
