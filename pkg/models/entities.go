package models

import "time"

// Store-facing views of the engine's entities. Workers and orchestrators
// operate on these; the services layer maps them to and from the ent rows so
// execution logic stays independent of the persistence schema.

// Participant is one actor instance bound to a study.
type Participant struct {
	ID          string           `json:"id"`
	StudyID     string           `json:"study_id"`
	BatchID     string           `json:"batch_id,omitempty"`
	ConditionID string           `json:"condition_id,omitempty"`
	UniqueID    string           `json:"unique_id,omitempty"`
	ActorType   ActorType        `json:"actor_type"`
	State       ParticipantState `json:"state"`
	Role        string           `json:"role"`
	PartnerID   string           `json:"partner_id,omitempty"`
	LLMConfig   *LLMConfig       `json:"llm_config,omitempty"`
	// Availability holds weekly availability windows for human pairing.
	Availability    []AvailabilityWindow `json:"availability,omitempty"`
	PairingMetadata map[string]any       `json:"pairing_metadata,omitempty"`
	Metadata        map[string]any       `json:"metadata,omitempty"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
}

// AvailabilityWindow is a weekly recurring availability slot.
type AvailabilityWindow struct {
	DayOfWeek int `json:"day_of_week"` // 0 = Sunday
	StartHour int `json:"start_hour"`  // inclusive, 0-23
	EndHour   int `json:"end_hour"`    // exclusive, 1-24
}

// Hours returns the window length in hours (0 for inverted windows).
func (w AvailabilityWindow) Hours() int {
	if w.EndHour <= w.StartHour {
		return 0
	}
	return w.EndHour - w.StartHour
}

// PairingMetadata records how a pairing was made.
type PairingMetadata struct {
	PairedAt             time.Time       `json:"paired_at"`
	Strategy             PairingStrategy `json:"strategy"`
	MatchedBy            string          `json:"matched_by"` // "auto" or "manual"
	OverlapHours         int             `json:"overlap_hours,omitempty"`
	PairedByResearcherID string          `json:"paired_by_researcher_id,omitempty"`
}

// Comment is a typed feedback record between participants.
type Comment struct {
	ID                  string      `json:"id"`
	AuthorID            string      `json:"author_id"`
	TargetParticipantID string      `json:"target_participant_id"`
	StoryArtifactID     string      `json:"story_artifact_id,omitempty"`
	PassageID           string      `json:"passage_id,omitempty"`
	Content             string      `json:"content"`
	Type                CommentType `json:"type"`
	Round               int         `json:"round"`
	Phase               Phase       `json:"phase"`
	ParentID            string      `json:"parent_id,omitempty"`
	Resolved            bool        `json:"resolved"`
	AddressedInRound    int         `json:"addressed_in_round,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}

// StoryArtifact references a versioned story blob.
type StoryArtifact struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	PluginType    string    `json:"plugin_type"`
	Version       int       `json:"version"`
	BlobKey       string    `json:"blob_key"`
	Bucket        string    `json:"bucket"`
	Status        string    `json:"status"` // "pending" or "confirmed"
	Name          string    `json:"name,omitempty"`
	Description   string    `json:"description,omitempty"`
	Round         int       `json:"round,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Story artifact statuses.
const (
	ArtifactPending   = "pending"
	ArtifactConfirmed = "confirmed"
)

// PhaseCompletion is one side's record of one phase in a hybrid session.
type PhaseCompletion struct {
	ParticipantID string           `json:"participant_id"`
	PartnerID     string           `json:"partner_id"`
	Round         int              `json:"round"`
	Phase         Phase            `json:"phase"`
	Status        CompletionStatus `json:"status"`
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	Result        map[string]any   `json:"result,omitempty"`
}

// HybridSessionState is the persisted state machine of one paired async
// session. In-memory copies are caches only; the store copy is authoritative.
type HybridSessionState struct {
	SessionID    string            `json:"session_id"`
	StudyID      string            `json:"study_id"`
	ParticipantA string            `json:"participant_a"`
	ParticipantB string            `json:"participant_b"`
	ActorTypeA   ActorType         `json:"actor_type_a"`
	ActorTypeB   ActorType         `json:"actor_type_b"`
	Config       *StudyConfig      `json:"config"`
	Completions  []PhaseCompletion `json:"completions"`
	StartedAt    time.Time         `json:"started_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// PartnerOf returns the other participant of the pair, or "" if id is not a
// member.
func (s *HybridSessionState) PartnerOf(id string) string {
	switch id {
	case s.ParticipantA:
		return s.ParticipantB
	case s.ParticipantB:
		return s.ParticipantA
	}
	return ""
}

// ActorTypeOf returns the actor type of the given participant.
func (s *HybridSessionState) ActorTypeOf(id string) ActorType {
	if id == s.ParticipantA {
		return s.ActorTypeA
	}
	return s.ActorTypeB
}

// CompletionFor returns the completion record for (participant, round, phase)
// or nil.
func (s *HybridSessionState) CompletionFor(participantID string, round int, phase Phase) *PhaseCompletion {
	for i := range s.Completions {
		c := &s.Completions[i]
		if c.ParticipantID == participantID && c.Round == round && c.Phase == phase {
			return c
		}
	}
	return nil
}

// Event is one row of the append-only participant journal.
type Event struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	Type          EventType      `json:"type"`
	Data          map[string]any `json:"data,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

// SurveyResponse is a participant's answer set for one survey instrument.
type SurveyResponse struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	SurveyID      string         `json:"survey_id"`
	Responses     map[string]any `json:"responses"`
	SubmittedAt   time.Time      `json:"submitted_at"`
}
