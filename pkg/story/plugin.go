// Package story defines the headless interactive-story plugin contract the
// engine uses to simulate a synthetic actor's play-through, plus a registry
// of plugin implementations and the built-in twine plugin.
package story

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dyadlab/fabula/pkg/models"
)

// ErrHeadlessUnsupported indicates a plugin cannot run without a UI. Jobs
// hitting this fail terminally.
var ErrHeadlessUnsupported = errors.New("plugin does not support headless mode")

// DefaultPluginType is used when a task config omits the plugin type.
const DefaultPluginType = "twine"

// Document is the engine-side story representation plugins run against.
type Document struct {
	Title        string           `json:"title,omitempty"`
	StartPassage string           `json:"start_passage"`
	Passages     []models.Passage `json:"passages"`
	Summary      string           `json:"summary,omitempty"`
}

// FromCreateStory converts a validated create_story payload into a Document.
func FromCreateStory(params *models.CreateStoryParams) *Document {
	return &Document{
		Title:        params.Title,
		StartPassage: params.StartPassage,
		Passages:     params.Passages,
		Summary:      params.StorySummary,
	}
}

// InitConfig carries per-session plugin initialization data.
type InitConfig struct {
	// StoryID is the artifact the session runs against, when known.
	StoryID string

	// Document is the preloaded story, when the caller already fetched it.
	// Nil starts the plugin in its authoring state.
	Document *Document
}

// ActionResult reports the outcome of one executed action.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Plugin is the headless story runtime contract.
type Plugin interface {
	// InitHeadless prepares the plugin for a headless session. Plugins that
	// require a UI return ErrHeadlessUnsupported.
	InitHeadless(ctx context.Context, cfg InitConfig) error

	// GetState returns the current session state as passed to the LLM.
	GetState() map[string]any

	// GetAvailableActions lists the action names valid in the current state.
	GetAvailableActions() []string

	// ExecuteHeadless applies one action. A non-nil error is fatal to the
	// session; a failed ActionResult records a rejected action and lets the
	// session continue.
	ExecuteHeadless(ctx context.Context, action *models.AgentAction) (*ActionResult, error)

	// IsComplete reports whether the session reached a terminal state.
	IsComplete() bool

	// Destroy releases plugin resources. Safe to call more than once.
	Destroy()
}

// Factory constructs a fresh plugin instance per session.
type Factory func() Plugin

// Registry maps plugin types to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given plugin type, replacing any
// previous registration.
func (r *Registry) Register(pluginType string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[pluginType] = factory
}

// New instantiates a plugin of the given type. Unknown types are rejected.
func (r *Registry) New(pluginType string) (Plugin, error) {
	if pluginType == "" {
		pluginType = DefaultPluginType
	}
	r.mu.RLock()
	factory, ok := r.factories[pluginType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown story plugin type %q", pluginType)
	}
	return factory(), nil
}

// Types returns the registered plugin types, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultRegistry returns a registry with the built-in plugins registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DefaultPluginType, func() Plugin { return NewTwinePlugin() })
	return r
}
