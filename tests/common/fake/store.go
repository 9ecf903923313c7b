//go:build unit

// Package fake provides an in-memory persistence layer for usecase
// tests. Every repository view shares the same maps and Within applies
// the function directly, so a test observes exactly what a committed
// transaction would have written.
package fake

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/referral"
	"repairbook/internal/domain/schedule"
	"repairbook/internal/infra"
	"repairbook/internal/usecase/shared"
)

type Store struct {
	AppointmentRows map[uuid.UUID]*booking.Appointment
	PartnerRows     map[uuid.UUID]*referral.Partner
	RedemptionRows  map[uuid.UUID]*referral.Redemption

	WorkingHourRows []schedule.WorkingHour

	// Observed lock activity, in call order.
	LockedPartnerIDs []uuid.UUID
	LockedIntervals  [][2]time.Time

	// WithinErr aborts Within before the function runs.
	WithinErr error
}

func NewStore() *Store {
	return &Store{
		AppointmentRows: make(map[uuid.UUID]*booking.Appointment),
		PartnerRows:     make(map[uuid.UUID]*referral.Partner),
		RedemptionRows:  make(map[uuid.UUID]*referral.Redemption),
	}
}

func (s *Store) AddPartner(p *referral.Partner)       { s.PartnerRows[p.ID()] = p }
func (s *Store) AddRedemption(r *referral.Redemption) { s.RedemptionRows[r.ID()] = r }
func (s *Store) AddAppointment(a *booking.Appointment) {
	s.AppointmentRows[a.ID()] = a
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if s.WithinErr != nil {
		return s.WithinErr
	}
	return fn(ctx, s)
}

func (s *Store) Appointments() shared.AppointmentRepository { return apptRepo{s} }
func (s *Store) Partners() shared.PartnerRepository         { return partnerRepo{s} }
func (s *Store) Redemptions() shared.RedemptionRepository   { return redemptionRepo{s} }
func (s *Store) SlotLocks() shared.SlotLocker               { return slotLocker{s} }

// WorkingHours satisfies the schedule read port of the booking command.
func (s *Store) WorkingHours(_ context.Context) ([]schedule.WorkingHour, error) {
	return s.WorkingHourRows, nil
}

// CountActiveOverlapping counts non-cancelled stored appointments whose
// raw interval overlaps [start, end). Callers pad the probe interval;
// stored rows stay raw, same as the real store.
func (s *Store) CountActiveOverlapping(_ context.Context, start, end time.Time) (int, error) {
	count := 0
	for _, a := range s.AppointmentRows {
		if a.Status() == booking.StatusCancelled {
			continue
		}
		if a.Slot().Start().Before(end) && a.Slot().End().After(start) {
			count++
		}
	}
	return count, nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.New(slog.DiscardHandler), infra.KindNotFound, msg, nil)
}

type apptRepo struct{ s *Store }

func (r apptRepo) Create(_ context.Context, a *booking.Appointment) error {
	r.s.AppointmentRows[a.ID()] = a
	return nil
}

func (r apptRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*booking.Appointment, error) {
	a, ok := r.s.AppointmentRows[id]
	if !ok {
		return nil, notFound("appointment not found")
	}
	return a, nil
}

func (r apptRepo) Update(_ context.Context, a *booking.Appointment) error {
	if _, ok := r.s.AppointmentRows[a.ID()]; !ok {
		return notFound("appointment not found")
	}
	r.s.AppointmentRows[a.ID()] = a
	return nil
}

func (r apptRepo) CountActiveOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	return r.s.CountActiveOverlapping(ctx, start, end)
}

type partnerRepo struct{ s *Store }

func (r partnerRepo) FindByCode(_ context.Context, code string) (*referral.Partner, error) {
	for _, p := range r.s.PartnerRows {
		if p.MatchesCode(code) {
			return p, nil
		}
	}
	return nil, notFound("partner not found")
}

func (r partnerRepo) FindByNormalizedPhone(_ context.Context, digits string) (*referral.Partner, error) {
	for _, p := range r.s.PartnerRows {
		if referral.NormalizePhone(p.ContactPhone()) == digits {
			return p, nil
		}
	}
	return nil, notFound("partner not found")
}

func (r partnerRepo) LockByID(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.PartnerRows[id]; !ok {
		return notFound("partner not found")
	}
	r.s.LockedPartnerIDs = append(r.s.LockedPartnerIDs, id)
	return nil
}

func (r partnerRepo) CountRedemptions(_ context.Context, partnerID uuid.UUID) (int, error) {
	count := 0
	for _, row := range r.s.RedemptionRows {
		if row.PartnerID() == partnerID && !row.IsConsumption() {
			count++
		}
	}
	return count, nil
}

type redemptionRepo struct{ s *Store }

func (r redemptionRepo) Create(_ context.Context, row *referral.Redemption) error {
	r.s.RedemptionRows[row.ID()] = row
	return nil
}

func (r redemptionRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*referral.Redemption, error) {
	row, ok := r.s.RedemptionRows[id]
	if !ok {
		return nil, notFound("redemption not found")
	}
	return row, nil
}

func (r redemptionRepo) ListByAppointment(_ context.Context, appointmentID uuid.UUID) ([]*referral.Redemption, error) {
	var rows []*referral.Redemption
	for _, row := range r.s.RedemptionRows {
		if row.AppointmentID() == appointmentID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r redemptionRepo) ListByPartner(_ context.Context, partnerID uuid.UUID) ([]*referral.Redemption, error) {
	var rows []*referral.Redemption
	for _, row := range r.s.RedemptionRows {
		if row.PartnerID() == partnerID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r redemptionRepo) Update(_ context.Context, row *referral.Redemption) error {
	if _, ok := r.s.RedemptionRows[row.ID()]; !ok {
		return notFound("redemption not found")
	}
	r.s.RedemptionRows[row.ID()] = row
	return nil
}

func (r redemptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.RedemptionRows[id]; !ok {
		return notFound("redemption not found")
	}
	delete(r.s.RedemptionRows, id)
	return nil
}

func (r redemptionRepo) HasConsumptionFor(_ context.Context, partnerID, appointmentID uuid.UUID) (bool, error) {
	for _, row := range r.s.RedemptionRows {
		if row.PartnerID() == partnerID && row.AppointmentID() == appointmentID && row.IsConsumption() {
			return true, nil
		}
	}
	return false, nil
}

type slotLocker struct{ s *Store }

func (l slotLocker) AcquireInterval(_ context.Context, start, end time.Time) error {
	l.s.LockedIntervals = append(l.s.LockedIntervals, [2]time.Time{start, end})
	return nil
}
