package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryArtifact holds the schema definition for the StoryArtifact entity — a
// versioned reference to an opaque story blob.
type StoryArtifact struct {
	ent.Schema
}

// Fields of the StoryArtifact.
func (StoryArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("story_artifact_id").
			Unique().
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.String("plugin_type").
			Immutable(),
		field.Int("version").
			Comment("Dense per (participant_id, plugin_type); allocated in the same transaction as the blob-write commit"),
		field.String("blob_key"),
		field.String("bucket"),
		field.Enum("status").
			Values("pending", "confirmed").
			Default("pending"),
		field.String("name").
			Optional(),
		field.Text("description").
			Optional(),
		field.Int("round").
			Optional().
			Comment("Collaborative round the story was authored in"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StoryArtifact.
func (StoryArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("participant", Participant.Type).
			Ref("story_artifacts").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StoryArtifact.
func (StoryArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id", "plugin_type", "version").
			Unique(),
		index.Fields("participant_id", "round"),
	}
}
