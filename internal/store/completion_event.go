package store

import (
	"context"
	"fmt"

	"github.com/starpathlabs/starpath/ent"
	"github.com/starpathlabs/starpath/ent/completionevent"
)

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetModuleID(data.ModuleID).
		SetGalaxyID(data.GalaxyID).
		SetXpAwarded(data.XPAwarded).
		SetTokensQueued(data.TokensQueued).
		SetSynced(data.Synced).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save completion event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error) {
	query := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(completionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionEventRecord, len(events))
	for i, e := range events {
		records[i] = completionRecord(e)
	}
	return records, nil
}

func (r *eventRepo) UnsyncedCompletions(ctx context.Context) ([]CompletionEventRecord, error) {
	events, err := r.client.CompletionEvent.Query().
		Where(completionevent.Synced(false)).
		Order(ent.Asc(completionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unsynced completions: %w", err)
	}

	records := make([]CompletionEventRecord, len(events))
	for i, e := range events {
		records[i] = completionRecord(e)
	}
	return records, nil
}

func (r *eventRepo) MarkCompletionSynced(ctx context.Context, sequence int64) error {
	n, err := r.client.CompletionEvent.Update().
		Where(completionevent.Sequence(sequence)).
		SetSynced(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark completion synced: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no completion event with sequence %d", sequence)
	}
	return nil
}

func completionRecord(e *ent.CompletionEvent) CompletionEventRecord {
	return CompletionEventRecord{
		ModuleID:     e.ModuleID,
		GalaxyID:     e.GalaxyID,
		XPAwarded:    e.XpAwarded,
		TokensQueued: e.TokensQueued,
		Synced:       e.Synced,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
	}
}
