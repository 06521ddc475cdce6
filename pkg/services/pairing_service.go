package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/pkg/models"
)

// defaultMinOverlapHours is the minimum weekly availability overlap required
// for a human-human pairing when overlap is enforced.
const defaultMinOverlapHours = 2

// PairingService matches unpaired participants into partner pairs. Every
// pairing write is symmetric: partner_id lands on both rows in one
// transaction.
type PairingService struct {
	client *ent.Client
}

// NewPairingService creates a new PairingService
func NewPairingService(client *ent.Client) *PairingService {
	return &PairingService{client: client}
}

// PairConfig drives one Pair run.
type PairConfig struct {
	StudyID  string
	Strategy models.PairingStrategy

	// RequireAvailabilityOverlap skips human-human pairs whose weekly
	// overlap falls below MinOverlapHours.
	RequireAvailabilityOverlap bool
	MinOverlapHours            int
}

// Pair matches unpaired participants of a study according to the strategy
// and returns the pairs made.
func (s *PairingService) Pair(ctx context.Context, cfg PairConfig) ([][2]string, error) {
	if cfg.StudyID == "" {
		return nil, NewValidationError("study_id", "study id is required")
	}
	minOverlap := cfg.MinOverlapHours
	if minOverlap <= 0 {
		minOverlap = defaultMinOverlapHours
	}

	unpaired, err := s.unpaired(ctx, cfg.StudyID)
	if err != nil {
		return nil, err
	}

	var pairs [][2]*ent.Participant
	switch cfg.Strategy {
	case models.PairHumanHuman:
		pairs = matchHumans(filterActor(unpaired, models.ActorHuman), cfg.RequireAvailabilityOverlap, minOverlap)
	case models.PairSyntheticSynthetic:
		pairs = matchSequential(filterActor(unpaired, models.ActorSynthetic))
	case models.PairHumanSynthetic:
		pairs = matchZip(filterActor(unpaired, models.ActorHuman), filterActor(unpaired, models.ActorSynthetic))
	case models.PairAuto:
		pairs = matchAuto(unpaired, cfg.RequireAvailabilityOverlap, minOverlap)
	default:
		return nil, fmt.Errorf("%w: pairing strategy %q", ErrInvalidInput, cfg.Strategy)
	}

	made := make([][2]string, 0, len(pairs))
	for _, pair := range pairs {
		meta := models.PairingMetadata{
			PairedAt:  time.Now(),
			Strategy:  cfg.Strategy,
			MatchedBy: "auto",
		}
		if pair[0].ActorType == participant.ActorType(models.ActorHuman) &&
			pair[1].ActorType == participant.ActorType(models.ActorHuman) {
			meta.OverlapHours = availabilityOverlap(pair[0].Availability, pair[1].Availability)
		}
		if err := s.writePairing(ctx, pair[0].ID, pair[1].ID, meta); err != nil {
			return made, err
		}
		made = append(made, [2]string{pair[0].ID, pair[1].ID})
	}
	return made, nil
}

// ManualPair pairs two specific participants under row locks, so two
// researchers cannot pair the same participant concurrently.
func (s *PairingService) ManualPair(ctx context.Context, aID, bID, researcherID string) error {
	if aID == "" || bID == "" || aID == bID {
		return fmt.Errorf("%w: two distinct participant ids are required", ErrInvalidInput)
	}
	return runTx(ctx, s.client, func(tx *ent.Tx) error {
		// Lock in a stable order to avoid lock inversion between two
		// concurrent ManualPair calls on the same pair.
		first, second := aID, bID
		if second < first {
			first, second = second, first
		}
		rows, err := tx.Participant.Query().
			Where(participant.IDIn(first, second)).
			Order(ent.Asc(participant.FieldID)).
			ForUpdate(entsql.WithLockAction(entsql.NoWait)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock participants %s, %s: %w", aID, bID, err)
		}
		if len(rows) != 2 {
			return fmt.Errorf("%w: participant %s or %s", ErrNotFound, aID, bID)
		}

		a, b := rows[0], rows[1]
		if a.StudyID != b.StudyID {
			return fmt.Errorf("%w: participants %s and %s belong to different studies", ErrInvalidInput, aID, bID)
		}
		if a.PartnerID != nil || b.PartnerID != nil {
			return fmt.Errorf("%w: participant already paired", ErrConflict)
		}

		meta := models.PairingMetadata{
			PairedAt:             time.Now(),
			Strategy:             "",
			MatchedBy:            "manual",
			PairedByResearcherID: researcherID,
		}
		return setPartners(ctx, tx, a.ID, b.ID, meta)
	})
}

// Unpair clears the pairing of a participant and its partner symmetrically.
func (s *PairingService) Unpair(ctx context.Context, id string) error {
	return runTx(ctx, s.client, func(tx *ent.Tx) error {
		row, err := tx.Participant.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: participant %s", ErrNotFound, id)
			}
			return fmt.Errorf("failed to get participant %s: %w", id, err)
		}
		if row.PartnerID == nil {
			return nil
		}
		partnerID := *row.PartnerID

		if err := tx.Participant.UpdateOneID(id).
			ClearPartnerID().
			ClearPairingMetadata().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to unpair participant %s: %w", id, err)
		}
		if err := tx.Participant.UpdateOneID(partnerID).
			ClearPartnerID().
			ClearPairingMetadata().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to unpair partner %s: %w", partnerID, err)
		}
		return nil
	})
}

// unpaired lists a study's unpaired participants eligible for pairing, in
// enrollment order.
func (s *PairingService) unpaired(ctx context.Context, studyID string) ([]*ent.Participant, error) {
	rows, err := s.client.Participant.Query().
		Where(
			participant.StudyIDEQ(studyID),
			participant.PartnerIDIsNil(),
			participant.StateIn(
				participant.State(models.ParticipantEnrolled),
				participant.State(models.ParticipantScheduled),
				participant.State(models.ParticipantConfirmed),
			),
		).
		Order(ent.Asc(participant.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaired participants of study %s: %w", studyID, err)
	}
	return rows, nil
}

func (s *PairingService) writePairing(ctx context.Context, aID, bID string, meta models.PairingMetadata) error {
	return runTx(ctx, s.client, func(tx *ent.Tx) error {
		return setPartners(ctx, tx, aID, bID, meta)
	})
}

func setPartners(ctx context.Context, tx *ent.Tx, aID, bID string, meta models.PairingMetadata) error {
	metaMap := map[string]any{
		"paired_at":  meta.PairedAt.Format(time.RFC3339),
		"matched_by": meta.MatchedBy,
	}
	if meta.Strategy != "" {
		metaMap["strategy"] = string(meta.Strategy)
	}
	if meta.OverlapHours > 0 {
		metaMap["overlap_hours"] = meta.OverlapHours
	}
	if meta.PairedByResearcherID != "" {
		metaMap["paired_by_researcher_id"] = meta.PairedByResearcherID
	}

	if err := tx.Participant.UpdateOneID(aID).
		SetPartnerID(bID).
		SetPairingMetadata(metaMap).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set partner on %s: %w", aID, err)
	}
	if err := tx.Participant.UpdateOneID(bID).
		SetPartnerID(aID).
		SetPairingMetadata(metaMap).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set partner on %s: %w", bID, err)
	}
	return nil
}

func filterActor(rows []*ent.Participant, actorType models.ActorType) []*ent.Participant {
	out := make([]*ent.Participant, 0, len(rows))
	for _, row := range rows {
		if row.ActorType == participant.ActorType(actorType) {
			out = append(out, row)
		}
	}
	return out
}

// matchSequential pairs participants in enrollment order: (0,1), (2,3), ...
func matchSequential(rows []*ent.Participant) [][2]*ent.Participant {
	pairs := make([][2]*ent.Participant, 0, len(rows)/2)
	for i := 0; i+1 < len(rows); i += 2 {
		pairs = append(pairs, [2]*ent.Participant{rows[i], rows[i+1]})
	}
	return pairs
}

// matchZip pairs the i-th human with the i-th synthetic.
func matchZip(humans, synthetics []*ent.Participant) [][2]*ent.Participant {
	n := len(humans)
	if len(synthetics) < n {
		n = len(synthetics)
	}
	pairs := make([][2]*ent.Participant, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]*ent.Participant{humans[i], synthetics[i]})
	}
	return pairs
}

// matchHumans greedily pairs humans maximizing weekly availability overlap.
func matchHumans(humans []*ent.Participant, requireOverlap bool, minOverlapHours int) [][2]*ent.Participant {
	type candidate struct {
		i, j    int
		overlap int
	}
	var candidates []candidate
	for i := 0; i < len(humans); i++ {
		for j := i + 1; j < len(humans); j++ {
			overlap := availabilityOverlap(humans[i].Availability, humans[j].Availability)
			if requireOverlap && overlap < minOverlapHours {
				continue
			}
			candidates = append(candidates, candidate{i: i, j: j, overlap: overlap})
		}
	}
	// Highest overlap first; ties by enrollment order for determinism.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].overlap > candidates[b].overlap
	})

	used := make(map[int]bool, len(humans))
	var pairs [][2]*ent.Participant
	for _, c := range candidates {
		if used[c.i] || used[c.j] {
			continue
		}
		used[c.i] = true
		used[c.j] = true
		pairs = append(pairs, [2]*ent.Participant{humans[c.i], humans[c.j]})
	}
	return pairs
}

// matchAuto runs human-human, then human-synthetic, then
// synthetic-synthetic, each over the residual unpaired set.
func matchAuto(rows []*ent.Participant, requireOverlap bool, minOverlapHours int) [][2]*ent.Participant {
	paired := make(map[string]bool)
	residual := func(actorType models.ActorType) []*ent.Participant {
		var out []*ent.Participant
		for _, row := range filterActor(rows, actorType) {
			if !paired[row.ID] {
				out = append(out, row)
			}
		}
		return out
	}
	mark := func(pairs [][2]*ent.Participant) {
		for _, p := range pairs {
			paired[p[0].ID] = true
			paired[p[1].ID] = true
		}
	}

	all := matchHumans(residual(models.ActorHuman), requireOverlap, minOverlapHours)
	mark(all)

	zip := matchZip(residual(models.ActorHuman), residual(models.ActorSynthetic))
	mark(zip)
	all = append(all, zip...)

	seq := matchSequential(residual(models.ActorSynthetic))
	mark(seq)
	all = append(all, seq...)

	return all
}

// availabilityOverlap sums, per day of week, the intersection hours of the
// two participants' availability windows.
func availabilityOverlap(a, b []models.AvailabilityWindow) int {
	total := 0
	for _, wa := range a {
		for _, wb := range b {
			if wa.DayOfWeek != wb.DayOfWeek {
				continue
			}
			start := wa.StartHour
			if wb.StartHour > start {
				start = wb.StartHour
			}
			end := wa.EndHour
			if wb.EndHour < end {
				end = wb.EndHour
			}
			if end > start {
				total += end - start
			}
		}
	}
	return total
}
