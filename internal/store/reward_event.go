package store

import (
	"context"
	"fmt"

	"github.com/starpathlabs/starpath/ent"
	"github.com/starpathlabs/starpath/ent/rewardevent"
)

func (r *eventRepo) AppendReward(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetAmount(data.Amount).
		SetReason(data.Reason)

	if data.Rarity != nil {
		builder = builder.SetRarity(*data.Rarity)
	}
	if data.BoxID != nil {
		builder = builder.SetBoxID(*data.BoxID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewards(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	query := r.client.RewardEvent.Query().
		Order(ent.Desc(rewardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(rewardevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(rewardevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(rewardevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(rewardevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}

	records := make([]RewardEventRecord, len(events))
	for i, e := range events {
		records[i] = RewardEventRecord{
			Kind:      e.Kind,
			Rarity:    e.Rarity,
			Amount:    e.Amount,
			Reason:    e.Reason,
			BoxID:     e.BoxID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) BoxInventory(ctx context.Context) ([]BoxRecord, error) {
	events, err := r.client.RewardEvent.Query().
		Where(rewardevent.KindIn(RewardBoxGranted, RewardBoxOpened)).
		Order(ent.Asc(rewardevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query box events: %w", err)
	}

	opened := make(map[string]bool)
	for _, e := range events {
		if e.Kind == RewardBoxOpened && e.BoxID != nil {
			opened[*e.BoxID] = true
		}
	}

	var boxes []BoxRecord
	for _, e := range events {
		if e.Kind != RewardBoxGranted || e.BoxID == nil || opened[*e.BoxID] {
			continue
		}
		var rarity string
		if e.Rarity != nil {
			rarity = *e.Rarity
		}
		boxes = append(boxes, BoxRecord{
			BoxID:     *e.BoxID,
			Rarity:    rarity,
			Reason:    e.Reason,
			GrantedAt: e.Timestamp,
		})
	}
	return boxes, nil
}

func (r *eventRepo) RewardTotals(ctx context.Context) (RewardTotals, error) {
	events, err := r.client.RewardEvent.Query().All(ctx)
	if err != nil {
		return RewardTotals{}, fmt.Errorf("query reward totals: %w", err)
	}

	var totals RewardTotals
	for _, e := range events {
		switch e.Kind {
		case RewardTokensQueued:
			totals.TokensQueued += e.Amount
		case RewardGrantFailed:
			totals.GrantsFailed++
		case RewardBoxGranted:
			totals.BoxesGranted++
		case RewardBoxOpened:
			totals.BoxesOpened++
		}
	}
	return totals, nil
}
