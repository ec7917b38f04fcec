package store

import (
	"context"
	"fmt"

	"github.com/starpathlabs/starpath/ent"
	"github.com/starpathlabs/starpath/ent/streakevent"
)

func (r *eventRepo) AppendStreak(ctx context.Context, data StreakEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StreakEvent.Create().
		SetSequence(seqNum).
		SetAction(data.Action).
		SetCount(data.Count).
		SetMilestone(data.Milestone).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save streak event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryStreaks(ctx context.Context, opts QueryOpts) ([]StreakEventRecord, error) {
	query := r.client.StreakEvent.Query().
		Order(ent.Desc(streakevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(streakevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(streakevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(streakevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(streakevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query streak events: %w", err)
	}

	records := make([]StreakEventRecord, len(events))
	for i, e := range events {
		records[i] = StreakEventRecord{
			Action:    e.Action,
			Count:     e.Count,
			Milestone: e.Milestone,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
