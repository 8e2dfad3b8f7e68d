package report

import (
	"context"
	"strings"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/audit"
	"github.com/harborbay/boathouse-scheduler/internal/cache"
	domain "github.com/harborbay/boathouse-scheduler/internal/domain/report"
	"github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	"github.com/harborbay/boathouse-scheduler/internal/events"
	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/models"
	"github.com/harborbay/boathouse-scheduler/internal/queue"
)

// ======================================================
// INPUT
// ======================================================

type ParticipantInput struct {
	MemberID      *uint
	Name          string
	DurationMin   int
	LessonType    string
	PaymentMethod string
}

type SubmitCoachReportInput struct {
	BookingID    uint
	CoachID      uint
	Participants []ParticipantInput
}

// ======================================================
// USE CASE
// ======================================================

type SubmitCoachReport struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher *queue.Publisher
	cache     *cache.ScheduleCache
	loc       *time.Location
}

func NewSubmitCoachReport(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher *queue.Publisher,
	cache *cache.ScheduleCache,
	loc *time.Location,
) *SubmitCoachReport {
	return &SubmitCoachReport{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		cache:     cache,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitCoachReport) Execute(
	ctx context.Context,
	in SubmitCoachReportInput,
) error {

	b, err := uc.repo.GetBookingWithBoat(ctx, in.BookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	assignments, err := uc.repo.ListAssignments(ctx, in.BookingID)
	if err != nil {
		return err
	}
	assignments = schedule.SanitizeAssignments(assignments)

	coaches, drivers := domain.SplitAssignments(assignments)
	coachIDs := domain.IDs(coaches)
	driverIDs := domain.IDs(drivers)

	role := domain.Classify(coachIDs, driverIDs, in.CoachID, b.Boat.IsFacility)
	if !role.IncludesCoach() {
		return httperr.ErrBusiness("not_a_coach")
	}

	rows, err := uc.validateParticipants(in.Participants)
	if err != nil {
		return err
	}

	// Supersede, never edit: the previous non-deleted rows for this
	// (booking, coach) are marked deleted and linked to their
	// replacements so the audit chain stays intact.
	existing, err := uc.repo.ListParticipants(ctx, in.BookingID)
	if err != nil {
		return err
	}

	var old []*models.Participant
	for i := range existing {
		p := &existing[i]
		if p.BookingID == in.BookingID && p.CoachID == in.CoachID && !p.IsDeleted {
			old = append(old, p)
		}
	}

	created := make([]*models.Participant, 0, len(rows))
	for i, row := range rows {
		p := &models.Participant{
			BookingID:       in.BookingID,
			CoachID:         in.CoachID,
			MemberID:        row.MemberID,
			ParticipantName: row.Name,
			DurationMin:     row.DurationMin,
			LessonType:      row.LessonType,
			PaymentMethod:   row.PaymentMethod,
		}
		if i < len(old) {
			p.ReplacesID = &old[i].ID
		}
		if err := uc.repo.CreateParticipant(ctx, p); err != nil {
			return err
		}
		created = append(created, p)
	}

	for i, p := range old {
		p.IsDeleted = true
		if i < len(created) {
			p.ReplacedByID = &created[i].ID
		}
		if err := uc.repo.UpdateParticipant(ctx, p); err != nil {
			return err
		}
	}

	if err := uc.cleanupStaleDriverReports(ctx, b, coachIDs, driverIDs); err != nil {
		return err
	}

	uc.cache.InvalidateDay(ctx, b.StartTime.In(uc.loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CoachID,
		Action:   "coach_report_submitted",
		Entity:   "booking",
		EntityID: &in.BookingID,
	})

	uc.publisher.Publish(ctx, events.QueueReportSubmitted, events.ReportSubmittedEvent{
		BookingID: in.BookingID,
		StaffID:   in.CoachID,
		Kind:      "coach",
	})

	return nil
}

// validateParticipants enforces the submission rules: at least one
// named participant, positive durations, known lesson types. These
// block the whole submission; nothing is coerced.
func (uc *SubmitCoachReport) validateParticipants(
	inputs []ParticipantInput,
) ([]ParticipantInput, error) {

	rows := make([]ParticipantInput, 0, len(inputs))
	for _, row := range inputs {
		row.Name = strings.TrimSpace(row.Name)
		if row.Name == "" {
			continue
		}

		if row.DurationMin <= 0 {
			return nil, httperr.ErrBusiness("invalid_duration")
		}

		if row.LessonType == "" {
			row.LessonType = models.LessonTypeUndesignated
		}
		switch row.LessonType {
		case models.LessonTypeUndesignated,
			models.LessonTypeDesignatedPaid,
			models.LessonTypeDesignatedFree:
		default:
			return nil, httperr.ErrBusiness("invalid_lesson_type")
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, httperr.ErrBusiness("no_participants")
	}

	return rows, nil
}

// cleanupStaleDriverReports deletes driver reports filed by members
// whose current classification no longer includes the driver role.
// Typically this is a coach whose implicit-driver status was revoked
// when an explicit driver got assigned. Runs on every submission, not
// just on read.
func (uc *SubmitCoachReport) cleanupStaleDriverReports(
	ctx context.Context,
	b *models.Booking,
	coachIDs []uint,
	driverIDs []uint,
) error {

	reports, err := uc.repo.ListDriverReports(ctx, b.ID)
	if err != nil {
		return err
	}

	for i := range reports {
		r := &reports[i]
		role := domain.Classify(coachIDs, driverIDs, r.StaffID, b.Boat.IsFacility)
		if role.IncludesDriver() {
			continue
		}
		if err := uc.repo.DeleteDriverReport(ctx, b.ID, r.StaffID); err != nil {
			return err
		}
	}

	return nil
}
