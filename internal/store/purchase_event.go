package store

import (
	"context"
	"fmt"

	"github.com/starpathlabs/starpath/ent"
	"github.com/starpathlabs/starpath/ent/purchaseevent"
)

func (r *eventRepo) AppendPurchase(ctx context.Context, data PurchaseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PurchaseEvent.Create().
		SetSequence(seqNum).
		SetCosmeticID(data.CosmeticID).
		SetPrice(data.Price).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save purchase event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPurchases(ctx context.Context, opts QueryOpts) ([]PurchaseEventRecord, error) {
	query := r.client.PurchaseEvent.Query().
		Order(ent.Desc(purchaseevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(purchaseevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(purchaseevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(purchaseevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(purchaseevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query purchase events: %w", err)
	}

	records := make([]PurchaseEventRecord, len(events))
	for i, e := range events {
		records[i] = PurchaseEventRecord{
			CosmeticID: e.CosmeticID,
			Price:      e.Price,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
