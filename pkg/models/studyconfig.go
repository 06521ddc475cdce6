package models

import (
	"encoding/json"
	"fmt"
)

// StudyConfig is the study configuration document consumed (not designed) by
// the engine. Unknown top-level fields are preserved verbatim in Extra so a
// round-trip through the engine never drops researcher-authored settings.
type StudyConfig struct {
	ExecutionMode ExecutionMode        `json:"executionMode,omitempty"`
	Collaboration *CollaborationConfig `json:"collaboration,omitempty"`
	HumanRole     string               `json:"humanRole,omitempty"`
	MaxPlayActions int                 `json:"maxPlayActions,omitempty"`
	// PhaseTimeLimits maps phase → seconds. A hint surfaced on phase:ready;
	// enforcement is external.
	PhaseTimeLimits  map[Phase]int           `json:"phaseTimeLimits,omitempty"`
	SyntheticPartner *SyntheticPartnerConfig `json:"syntheticPartner,omitempty"`
	Notifications    map[string]any          `json:"notifications,omitempty"`

	// Extra holds unknown top-level fields.
	Extra map[string]json.RawMessage `json:"-"`
}

// CollaborationConfig describes the paired protocol.
type CollaborationConfig struct {
	Enabled          bool            `json:"enabled"`
	PairingMethod    PairingStrategy `json:"pairingMethod,omitempty"`
	Rounds           int             `json:"rounds"`
	PhasesPerRound   []Phase         `json:"phasesPerRound,omitempty"`
	FeedbackRequired bool            `json:"feedbackRequired"`
	RevisionRequired bool            `json:"revisionRequired"`
}

// SyntheticPartnerConfig holds defaults applied to synthetic partners in
// hybrid sessions.
type SyntheticPartnerConfig struct {
	LLMConfig       *LLMConfig `json:"llmConfig,omitempty"`
	ResponseDelayMs int        `json:"responseDelayMs,omitempty"`
}

// knownStudyConfigFields are the top-level keys parsed into typed fields.
var knownStudyConfigFields = map[string]bool{
	"executionMode":    true,
	"collaboration":    true,
	"humanRole":        true,
	"maxPlayActions":   true,
	"phaseTimeLimits":  true,
	"syntheticPartner": true,
	"notifications":    true,
}

// ParseStudyConfig decodes and validates a study config document.
func ParseStudyConfig(raw []byte) (*StudyConfig, error) {
	var cfg StudyConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing study config: %w", err)
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("parsing study config fields: %w", err)
	}
	for k, v := range all {
		if !knownStudyConfigFields[k] {
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]json.RawMessage)
			}
			cfg.Extra[k] = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural invariants. The reserved "timed" mode is
// accepted by the schema but rejected here with ErrNotImplemented so callers
// fail at the earliest boundary.
func (c *StudyConfig) Validate() error {
	switch c.ExecutionMode {
	case "", ModeSynchronous, ModeAsynchronous:
	case ModeTimed:
		return fmt.Errorf("execution mode %q: %w", c.ExecutionMode, ErrNotImplemented)
	default:
		return fmt.Errorf("invalid execution mode: %q", c.ExecutionMode)
	}
	if c.MaxPlayActions < 0 {
		return fmt.Errorf("maxPlayActions must be >= 0")
	}
	for phase := range c.PhaseTimeLimits {
		if !ValidPhase(phase) {
			return fmt.Errorf("phaseTimeLimits: unknown phase %q", phase)
		}
	}
	if c.Collaboration != nil {
		if err := c.Collaboration.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the collaboration block.
func (c *CollaborationConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Rounds < 1 {
		return fmt.Errorf("collaboration: rounds must be >= 1")
	}
	for _, p := range c.PhasesPerRound {
		if !ValidPhase(p) {
			return fmt.Errorf("collaboration: unknown phase %q", p)
		}
	}
	switch c.PairingMethod {
	case "", PairHumanHuman, PairSyntheticSynthetic, PairHumanSynthetic, PairAuto:
	default:
		return fmt.Errorf("collaboration: unknown pairing method %q", c.PairingMethod)
	}
	return nil
}

// Phases returns the configured phase order, defaulting to
// author → play → review.
func (c *StudyConfig) Phases() []Phase {
	if c.Collaboration != nil && len(c.Collaboration.PhasesPerRound) > 0 {
		return c.Collaboration.PhasesPerRound
	}
	return DefaultPhases()
}

// Rounds returns the configured round count, defaulting to 1.
func (c *StudyConfig) Rounds() int {
	if c.Collaboration != nil && c.Collaboration.Rounds > 0 {
		return c.Collaboration.Rounds
	}
	return 1
}

// FeedbackRequired reports whether authors must consume prior-round review
// feedback.
func (c *StudyConfig) FeedbackRequired() bool {
	return c.Collaboration != nil && c.Collaboration.FeedbackRequired
}

// PlayActionLimit returns maxPlayActions, defaulting to 20.
func (c *StudyConfig) PlayActionLimit() int {
	if c.MaxPlayActions > 0 {
		return c.MaxPlayActions
	}
	return 20
}

// TimeLimitFor returns the per-phase time limit in seconds, 0 when unset.
func (c *StudyConfig) TimeLimitFor(p Phase) int {
	return c.PhaseTimeLimits[p]
}

// MarshalJSON re-emits typed fields plus preserved unknown fields.
func (c *StudyConfig) MarshalJSON() ([]byte, error) {
	type alias StudyConfig
	base, err := json.Marshal((*alias)(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return base, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
