package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity — typed
// feedback between participants, optionally threaded.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("comment_id").
			Unique().
			Immutable(),
		field.String("author_id").
			Immutable(),
		field.String("target_participant_id").
			Immutable(),
		field.String("story_artifact_id").
			Optional().
			Nillable(),
		field.String("passage_id").
			Optional().
			Nillable(),
		field.Text("content"),
		field.Enum("type").
			Values("feedback", "praise", "suggestion", "critique", "question").
			Default("feedback"),
		field.Int("round"),
		field.Enum("phase").
			Values("author", "play", "review").
			Default("review"),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Deleting a comment cascades to its direct replies"),
		field.Bool("resolved").
			Default(false),
		field.Int("addressed_in_round").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Comment.
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", Participant.Type).
			Ref("authored_comments").
			Field("author_id").
			Unique().
			Required().
			Immutable(),
		edge.From("target", Participant.Type).
			Ref("received_comments").
			Field("target_participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_participant_id", "round", "phase"),
		index.Fields("author_id", "round"),
		index.Fields("story_artifact_id"),
		index.Fields("parent_id"),
	}
}
