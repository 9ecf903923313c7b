package repository

import (
	"context"
	"time"

	"repairbook/internal/infra/db"
)

// Advisory lock namespace for booking intervals, distinct from any
// other pg_advisory user in the database.
const slotLockNamespace int64 = 0x52425348 // "RBSH"

// SlotLocker serializes bookings per time region with transaction-scoped
// advisory locks. Row locks cannot serialize inserts into an interval
// that has no rows yet; a lock on each hour bucket the interval touches
// can. Buckets are locked in ascending order so two overlapping
// intervals cannot deadlock.
type SlotLocker struct {
	db db.DBTX
}

func NewSlotLocker(dbtx db.DBTX) *SlotLocker {
	return &SlotLocker{db: dbtx}
}

func (l *SlotLocker) AcquireInterval(ctx context.Context, start, end time.Time) error {
	for bucket := start.Truncate(time.Hour); bucket.Before(end); bucket = bucket.Add(time.Hour) {
		key := slotLockNamespace<<32 | (bucket.Unix()/3600)&0xFFFFFFFF
		if _, err := l.db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
			return wrapDB("failed to acquire interval lock", err)
		}
	}
	return nil
}
