package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	booking      *models.Booking
	assignments  []models.BookingAssignment
	participants []models.Participant
	reports      []models.DriverReport

	nextID uint
}

func newFakeRepo(b *models.Booking) *fakeRepo {
	return &fakeRepo{booking: b, nextID: 1}
}

func (f *fakeRepo) GetBookingWithBoat(_ context.Context, bookingID uint) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != bookingID {
		return nil, errors.New("record not found")
	}
	return f.booking, nil
}

func (f *fakeRepo) ListAssignments(_ context.Context, bookingID uint) ([]models.BookingAssignment, error) {
	var out []models.BookingAssignment
	for _, a := range f.assignments {
		if a.BookingID == bookingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListParticipants(_ context.Context, bookingID uint) ([]models.Participant, error) {
	var out []models.Participant
	for _, p := range f.participants {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateParticipant(_ context.Context, p *models.Participant) error {
	p.ID = f.nextID
	f.nextID++
	f.participants = append(f.participants, *p)
	return nil
}

func (f *fakeRepo) UpdateParticipant(_ context.Context, p *models.Participant) error {
	for i := range f.participants {
		if f.participants[i].ID == p.ID {
			f.participants[i] = *p
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepo) ListDriverReports(_ context.Context, bookingID uint) ([]models.DriverReport, error) {
	var out []models.DriverReport
	for _, r := range f.reports {
		if r.BookingID == bookingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpsertDriverReport(_ context.Context, r *models.DriverReport) error {
	for i := range f.reports {
		if f.reports[i].BookingID == r.BookingID && f.reports[i].StaffID == r.StaffID {
			f.reports[i].DriverDurationMin = r.DriverDurationMin
			return nil
		}
	}
	r.ID = f.nextID
	f.nextID++
	f.reports = append(f.reports, *r)
	return nil
}

func (f *fakeRepo) DeleteDriverReport(_ context.Context, bookingID, staffID uint) error {
	for i := range f.reports {
		if f.reports[i].BookingID == bookingID && f.reports[i].StaffID == staffID {
			f.reports = append(f.reports[:i], f.reports[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) assign(staffID uint, name, role string) {
	f.assignments = append(f.assignments, models.BookingAssignment{
		ID:        f.nextID,
		BookingID: f.booking.ID,
		StaffID:   staffID,
		Staff:     models.User{ID: staffID, Name: name},
		Role:      role,
	})
	f.nextID++
}

func (f *fakeRepo) liveParticipants(coachID uint) []models.Participant {
	var out []models.Participant
	for _, p := range f.participants {
		if p.CoachID == coachID && !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:          7,
		BoatID:      1,
		Boat:        models.Boat{ID: 1, Name: "Blue Speeder", Active: true},
		StartTime:   time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
		DurationMin: 60,
		Status:      "scheduled",
	}
}

func wantBusinessCode(t *testing.T, err error, code string) {
	t.Helper()
	got, ok := httperr.AnyBusiness(err)
	if !ok {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
	if got != code {
		t.Fatalf("business code = %q, want %q", got, code)
	}
}

// ======================================================
// COACH REPORT
// ======================================================

func TestSubmitCoachReportCreatesRows(t *testing.T) {
	repo := newFakeRepo(testBooking())
	repo.assign(1, "Alice", models.AssignmentRoleCoach)

	uc := NewSubmitCoachReport(repo, nil, nil, nil, time.UTC)

	err := uc.Execute(context.Background(), SubmitCoachReportInput{
		BookingID: 7,
		CoachID:   1,
		Participants: []ParticipantInput{
			{Name: "Mia", DurationMin: 30},
			{Name: "  ", DurationMin: 15}, // blank rows are skipped
			{Name: "Leo", DurationMin: 45, LessonType: models.LessonTypeDesignatedPaid},
		},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	live := repo.liveParticipants(1)
	if len(live) != 2 {
		t.Fatalf("expected 2 live rows, got %d", len(live))
	}
	if live[0].LessonType != models.LessonTypeUndesignated {
		t.Errorf("empty lesson type should default, got %q", live[0].LessonType)
	}
	if live[1].ParticipantName != "Leo" || live[1].LessonType != models.LessonTypeDesignatedPaid {
		t.Errorf("unexpected second row: %+v", live[1])
	}
}

func TestSubmitCoachReportSupersedesPreviousRows(t *testing.T) {
	repo := newFakeRepo(testBooking())
	repo.assign(1, "Alice", models.AssignmentRoleCoach)

	uc := NewSubmitCoachReport(repo, nil, nil, nil, time.UTC)
	ctx := context.Background()

	if err := uc.Execute(ctx, SubmitCoachReportInput{
		BookingID:    7,
		CoachID:      1,
		Participants: []ParticipantInput{{Name: "Mia", DurationMin: 30}},
	}); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	firstID := repo.liveParticipants(1)[0].ID

	if err := uc.Execute(ctx, SubmitCoachReportInput{
		BookingID:    7,
		CoachID:      1,
		Participants: []ParticipantInput{{Name: "Mia", DurationMin: 60}},
	}); err != nil {
		t.Fatalf("second submission: %v", err)
	}

	live := repo.liveParticipants(1)
	if len(live) != 1 {
		t.Fatalf("expected 1 live row after resubmission, got %d", len(live))
	}
	if live[0].DurationMin != 60 {
		t.Errorf("live row duration = %d, want 60", live[0].DurationMin)
	}
	if live[0].ReplacesID == nil || *live[0].ReplacesID != firstID {
		t.Errorf("new row must point at the superseded one, got %v", live[0].ReplacesID)
	}

	var old *models.Participant
	for i := range repo.participants {
		if repo.participants[i].ID == firstID {
			old = &repo.participants[i]
		}
	}
	if old == nil || !old.IsDeleted {
		t.Fatal("superseded row must be marked deleted, not removed")
	}
	if old.ReplacedByID == nil || *old.ReplacedByID != live[0].ID {
		t.Errorf("superseded row must link forward, got %v", old.ReplacedByID)
	}
}

func TestSubmitCoachReportValidation(t *testing.T) {
	newUC := func() (*SubmitCoachReport, *fakeRepo) {
		repo := newFakeRepo(testBooking())
		repo.assign(1, "Alice", models.AssignmentRoleCoach)
		return NewSubmitCoachReport(repo, nil, nil, nil, time.UTC), repo
	}
	ctx := context.Background()

	t.Run("unknown booking", func(t *testing.T) {
		uc, _ := newUC()
		err := uc.Execute(ctx, SubmitCoachReportInput{BookingID: 99, CoachID: 1})
		wantBusinessCode(t, err, "booking_not_found")
	})

	t.Run("submitter is not a coach", func(t *testing.T) {
		uc, _ := newUC()
		err := uc.Execute(ctx, SubmitCoachReportInput{
			BookingID:    7,
			CoachID:      5,
			Participants: []ParticipantInput{{Name: "Mia", DurationMin: 30}},
		})
		wantBusinessCode(t, err, "not_a_coach")
	})

	t.Run("only blank names", func(t *testing.T) {
		uc, _ := newUC()
		err := uc.Execute(ctx, SubmitCoachReportInput{
			BookingID:    7,
			CoachID:      1,
			Participants: []ParticipantInput{{Name: "   ", DurationMin: 30}},
		})
		wantBusinessCode(t, err, "no_participants")
	})

	t.Run("non-positive duration", func(t *testing.T) {
		uc, _ := newUC()
		err := uc.Execute(ctx, SubmitCoachReportInput{
			BookingID:    7,
			CoachID:      1,
			Participants: []ParticipantInput{{Name: "Mia", DurationMin: 0}},
		})
		wantBusinessCode(t, err, "invalid_duration")
	})

	t.Run("unknown lesson type", func(t *testing.T) {
		uc, _ := newUC()
		err := uc.Execute(ctx, SubmitCoachReportInput{
			BookingID:    7,
			CoachID:      1,
			Participants: []ParticipantInput{{Name: "Mia", DurationMin: 30, LessonType: "trial"}},
		})
		wantBusinessCode(t, err, "invalid_lesson_type")
	})
}

// A coach files a driver report while presumed to drive. Once an
// explicit driver is assigned the next submission must sweep the
// coach's now-stale report and keep the real driver's.
func TestSubmitCoachReportDeletesStaleDriverReports(t *testing.T) {
	repo := newFakeRepo(testBooking())
	repo.assign(1, "Alice", models.AssignmentRoleCoach)
	ctx := context.Background()

	driverUC := NewSubmitDriverReport(repo, nil, nil, nil, time.UTC)
	if err := driverUC.Execute(ctx, SubmitDriverReportInput{
		BookingID: 7, StaffID: 1, DriverDurationMin: 20,
	}); err != nil {
		t.Fatalf("implicit driver report: %v", err)
	}

	repo.assign(2, "Bob", models.AssignmentRoleDriver)
	if err := driverUC.Execute(ctx, SubmitDriverReportInput{
		BookingID: 7, StaffID: 2, DriverDurationMin: 40,
	}); err != nil {
		t.Fatalf("explicit driver report: %v", err)
	}

	coachUC := NewSubmitCoachReport(repo, nil, nil, nil, time.UTC)
	if err := coachUC.Execute(ctx, SubmitCoachReportInput{
		BookingID:    7,
		CoachID:      1,
		Participants: []ParticipantInput{{Name: "Mia", DurationMin: 30}},
	}); err != nil {
		t.Fatalf("coach report: %v", err)
	}

	if len(repo.reports) != 1 {
		t.Fatalf("expected 1 surviving driver report, got %d", len(repo.reports))
	}
	if repo.reports[0].StaffID != 2 {
		t.Errorf("surviving report belongs to staff %d, want 2", repo.reports[0].StaffID)
	}
}

// ======================================================
// DRIVER REPORT
// ======================================================

func TestSubmitDriverReport(t *testing.T) {
	ctx := context.Background()

	t.Run("implicit driver may file, zero minutes valid", func(t *testing.T) {
		repo := newFakeRepo(testBooking())
		repo.assign(1, "Alice", models.AssignmentRoleCoach)

		uc := NewSubmitDriverReport(repo, nil, nil, nil, time.UTC)
		if err := uc.Execute(ctx, SubmitDriverReportInput{
			BookingID: 7, StaffID: 1, DriverDurationMin: 0,
		}); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if len(repo.reports) != 1 || repo.reports[0].DriverDurationMin != 0 {
			t.Errorf("expected one zero-minute report, got %+v", repo.reports)
		}
	})

	t.Run("resubmission updates in place", func(t *testing.T) {
		repo := newFakeRepo(testBooking())
		repo.assign(2, "Bob", models.AssignmentRoleDriver)

		uc := NewSubmitDriverReport(repo, nil, nil, nil, time.UTC)
		for _, minutes := range []int{20, 35} {
			if err := uc.Execute(ctx, SubmitDriverReportInput{
				BookingID: 7, StaffID: 2, DriverDurationMin: minutes,
			}); err != nil {
				t.Fatalf("Execute(%d) error: %v", minutes, err)
			}
		}
		if len(repo.reports) != 1 {
			t.Fatalf("expected 1 report after resubmission, got %d", len(repo.reports))
		}
		if repo.reports[0].DriverDurationMin != 35 {
			t.Errorf("minutes = %d, want 35", repo.reports[0].DriverDurationMin)
		}
	})

	t.Run("negative minutes rejected", func(t *testing.T) {
		repo := newFakeRepo(testBooking())
		repo.assign(2, "Bob", models.AssignmentRoleDriver)

		uc := NewSubmitDriverReport(repo, nil, nil, nil, time.UTC)
		err := uc.Execute(ctx, SubmitDriverReportInput{
			BookingID: 7, StaffID: 2, DriverDurationMin: -5,
		})
		wantBusinessCode(t, err, "invalid_duration")
	})

	t.Run("coach with explicit driver present is not a driver", func(t *testing.T) {
		repo := newFakeRepo(testBooking())
		repo.assign(1, "Alice", models.AssignmentRoleCoach)
		repo.assign(2, "Bob", models.AssignmentRoleDriver)

		uc := NewSubmitDriverReport(repo, nil, nil, nil, time.UTC)
		err := uc.Execute(ctx, SubmitDriverReportInput{
			BookingID: 7, StaffID: 1, DriverDurationMin: 10,
		})
		wantBusinessCode(t, err, "not_a_driver")
	})

	t.Run("facility booking accepts no driver report", func(t *testing.T) {
		b := testBooking()
		b.Boat = models.Boat{ID: 2, Name: "彈簧床", IsFacility: true, Active: true}
		b.BoatID = 2
		repo := newFakeRepo(b)
		repo.assign(1, "Alice", models.AssignmentRoleCoach)

		uc := NewSubmitDriverReport(repo, nil, nil, nil, time.UTC)
		err := uc.Execute(ctx, SubmitDriverReportInput{
			BookingID: 7, StaffID: 1, DriverDurationMin: 10,
		})
		wantBusinessCode(t, err, "not_a_driver")
	})
}
