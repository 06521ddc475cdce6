// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentContextsColumns holds the columns for the "agent_contexts" table.
	AgentContextsColumns = []*schema.Column{
		{Name: "agent_context_id", Type: field.TypeString, Unique: true},
		{Name: "current_round", Type: field.TypeInt, Default: 1},
		{Name: "current_phase", Type: field.TypeEnum, Enums: []string{"author", "play", "review"}, Default: "author"},
		{Name: "own_story_drafts", Type: field.TypeJSON},
		{Name: "partner_stories_played", Type: field.TypeJSON},
		{Name: "feedback_given", Type: field.TypeJSON},
		{Name: "feedback_received", Type: field.TypeJSON},
		{Name: "cumulative_learnings", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString, Unique: true},
	}
	// AgentContextsTable holds the schema information for the "agent_contexts" table.
	AgentContextsTable = &schema.Table{
		Name:       "agent_contexts",
		Columns:    AgentContextsColumns,
		PrimaryKey: []*schema.Column{AgentContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_contexts_participants_agent_context",
				Columns:    []*schema.Column{AgentContextsColumns[10]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "queued", "running", "paused", "complete", "failed", "deleting"}, Default: "draft"},
		{Name: "actors_created", Type: field.TypeInt, Default: 0},
		{Name: "actors_completed", Type: field.TypeInt, Default: 0},
		{Name: "export_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "study_id", Type: field.TypeString},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batches_studies_batches",
				Columns:    []*schema.Column{BatchesColumns[11]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batch_status",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[2]},
			},
			{
				Name:    "batch_study_id_status",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[11], BatchesColumns[2]},
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "comment_id", Type: field.TypeString, Unique: true},
		{Name: "story_artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "passage_id", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"feedback", "praise", "suggestion", "critique", "question"}, Default: "feedback"},
		{Name: "round", Type: field.TypeInt},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"author", "play", "review"}, Default: "review"},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "addressed_in_round", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "author_id", Type: field.TypeString},
		{Name: "target_participant_id", Type: field.TypeString},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_participants_authored_comments",
				Columns:    []*schema.Column{CommentsColumns[11]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "comments_participants_received_comments",
				Columns:    []*schema.Column{CommentsColumns[12]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_target_participant_id_round_phase",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[12], CommentsColumns[5], CommentsColumns[6]},
			},
			{
				Name:    "comment_author_id_round",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[11], CommentsColumns[5]},
			},
			{
				Name:    "comment_story_artifact_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[1]},
			},
			{
				Name:    "comment_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[7]},
			},
		},
	}
	// ConditionsColumns holds the columns for the "conditions" table.
	ConditionsColumns = []*schema.Column{
		{Name: "condition_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// ConditionsTable holds the schema information for the "conditions" table.
	ConditionsTable = &schema.Table{
		Name:       "conditions",
		Columns:    ConditionsColumns,
		PrimaryKey: []*schema.Column{ConditionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conditions_studies_conditions",
				Columns:    []*schema.Column{ConditionsColumns[4]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_participants_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_participant_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[3]},
			},
			{
				Name:    "event_participant_id_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[1]},
			},
		},
	}
	// HybridSessionsColumns holds the columns for the "hybrid_sessions" table.
	HybridSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "study_id", Type: field.TypeString},
		{Name: "participant_a", Type: field.TypeString},
		{Name: "participant_b", Type: field.TypeString},
		{Name: "actor_type_a", Type: field.TypeEnum, Enums: []string{"human", "synthetic"}},
		{Name: "actor_type_b", Type: field.TypeEnum, Enums: []string{"human", "synthetic"}},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "completions", Type: field.TypeJSON},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// HybridSessionsTable holds the schema information for the "hybrid_sessions" table.
	HybridSessionsTable = &schema.Table{
		Name:       "hybrid_sessions",
		Columns:    HybridSessionsColumns,
		PrimaryKey: []*schema.Column{HybridSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hybridsession_study_id",
				Unique:  false,
				Columns: []*schema.Column{HybridSessionsColumns[1]},
			},
			{
				Name:    "hybridsession_participant_a",
				Unique:  false,
				Columns: []*schema.Column{HybridSessionsColumns[2]},
			},
			{
				Name:    "hybridsession_participant_b",
				Unique:  false,
				Columns: []*schema.Column{HybridSessionsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "priority", Type: field.TypeInt, Default: 10},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed"}, Default: "pending"},
		{Name: "attempts_remaining", Type: field.TypeInt, Default: 3},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "next_run_at", Type: field.TypeTime},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "retain_until", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4], JobsColumns[3], JobsColumns[14]},
			},
			{
				Name:    "job_status_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[7]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[12]},
			},
			{
				Name:    "job_retain_until",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[13]},
			},
		},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "condition_id", Type: field.TypeString, Nullable: true},
		{Name: "unique_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"human", "synthetic"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"enrolled", "scheduled", "confirmed", "checked_in", "active", "complete", "withdrawn", "excluded"}, Default: "enrolled"},
		{Name: "role", Type: field.TypeString, Default: "player"},
		{Name: "partner_id", Type: field.TypeString, Nullable: true},
		{Name: "llm_config", Type: field.TypeJSON, Nullable: true},
		{Name: "availability", Type: field.TypeJSON, Nullable: true},
		{Name: "pairing_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
		{Name: "study_id", Type: field.TypeString},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "participants_batches_participants",
				Columns:    []*schema.Column{ParticipantsColumns[14]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "participants_studies_participants",
				Columns:    []*schema.Column{ParticipantsColumns[15]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participant_batch_id_state",
				Unique:  false,
				Columns: []*schema.Column{ParticipantsColumns[14], ParticipantsColumns[4]},
			},
			{
				Name:    "participant_study_id_state",
				Unique:  false,
				Columns: []*schema.Column{ParticipantsColumns[15], ParticipantsColumns[4]},
			},
			{
				Name:    "participant_partner_id",
				Unique:  false,
				Columns: []*schema.Column{ParticipantsColumns[6]},
			},
		},
	}
	// StoryArtifactsColumns holds the columns for the "story_artifacts" table.
	StoryArtifactsColumns = []*schema.Column{
		{Name: "story_artifact_id", Type: field.TypeString, Unique: true},
		{Name: "plugin_type", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "blob_key", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed"}, Default: "pending"},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "round", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
	}
	// StoryArtifactsTable holds the schema information for the "story_artifacts" table.
	StoryArtifactsTable = &schema.Table{
		Name:       "story_artifacts",
		Columns:    StoryArtifactsColumns,
		PrimaryKey: []*schema.Column{StoryArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "story_artifacts_participants_story_artifacts",
				Columns:    []*schema.Column{StoryArtifactsColumns[10]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "storyartifact_participant_id_plugin_type_version",
				Unique:  true,
				Columns: []*schema.Column{StoryArtifactsColumns[10], StoryArtifactsColumns[1], StoryArtifactsColumns[2]},
			},
			{
				Name:    "storyartifact_participant_id_round",
				Unique:  false,
				Columns: []*schema.Column{StoryArtifactsColumns[10], StoryArtifactsColumns[8]},
			},
		},
	}
	// StudiesColumns holds the columns for the "studies" table.
	StudiesColumns = []*schema.Column{
		{Name: "study_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "archived"}, Default: "draft"},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "owner_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudiesTable holds the schema information for the "studies" table.
	StudiesTable = &schema.Table{
		Name:       "studies",
		Columns:    StudiesColumns,
		PrimaryKey: []*schema.Column{StudiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "study_status",
				Unique:  false,
				Columns: []*schema.Column{StudiesColumns[3]},
			},
		},
	}
	// SurveysColumns holds the columns for the "surveys" table.
	SurveysColumns = []*schema.Column{
		{Name: "survey_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "study_id", Type: field.TypeString},
	}
	// SurveysTable holds the schema information for the "surveys" table.
	SurveysTable = &schema.Table{
		Name:       "surveys",
		Columns:    SurveysColumns,
		PrimaryKey: []*schema.Column{SurveysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "surveys_studies_surveys",
				Columns:    []*schema.Column{SurveysColumns[4]},
				RefColumns: []*schema.Column{StudiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SurveyResponsesColumns holds the columns for the "survey_responses" table.
	SurveyResponsesColumns = []*schema.Column{
		{Name: "survey_response_id", Type: field.TypeString, Unique: true},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "survey_id", Type: field.TypeString},
	}
	// SurveyResponsesTable holds the schema information for the "survey_responses" table.
	SurveyResponsesTable = &schema.Table{
		Name:       "survey_responses",
		Columns:    SurveyResponsesColumns,
		PrimaryKey: []*schema.Column{SurveyResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "survey_responses_participants_survey_responses",
				Columns:    []*schema.Column{SurveyResponsesColumns[3]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "survey_responses_surveys_responses",
				Columns:    []*schema.Column{SurveyResponsesColumns[4]},
				RefColumns: []*schema.Column{SurveysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "surveyresponse_participant_id",
				Unique:  false,
				Columns: []*schema.Column{SurveyResponsesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentContextsTable,
		BatchesTable,
		CommentsTable,
		ConditionsTable,
		EventsTable,
		HybridSessionsTable,
		JobsTable,
		ParticipantsTable,
		StoryArtifactsTable,
		StudiesTable,
		SurveysTable,
		SurveyResponsesTable,
	}
)

func init() {
	AgentContextsTable.ForeignKeys[0].RefTable = ParticipantsTable
	BatchesTable.ForeignKeys[0].RefTable = StudiesTable
	CommentsTable.ForeignKeys[0].RefTable = ParticipantsTable
	CommentsTable.ForeignKeys[1].RefTable = ParticipantsTable
	ConditionsTable.ForeignKeys[0].RefTable = StudiesTable
	EventsTable.ForeignKeys[0].RefTable = ParticipantsTable
	ParticipantsTable.ForeignKeys[0].RefTable = BatchesTable
	ParticipantsTable.ForeignKeys[1].RefTable = StudiesTable
	StoryArtifactsTable.ForeignKeys[0].RefTable = ParticipantsTable
	SurveysTable.ForeignKeys[0].RefTable = StudiesTable
	SurveyResponsesTable.ForeignKeys[0].RefTable = ParticipantsTable
	SurveyResponsesTable.ForeignKeys[1].RefTable = SurveysTable
}
