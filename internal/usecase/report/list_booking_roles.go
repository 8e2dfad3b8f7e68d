package report

import (
	"context"

	domain "github.com/harborbay/boathouse-scheduler/internal/domain/report"
	"github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	"github.com/harborbay/boathouse-scheduler/internal/dto"
	"github.com/harborbay/boathouse-scheduler/internal/httperr"
)

type ListBookingRoles struct {
	repo domain.Repository
}

func NewListBookingRoles(repo domain.Repository) *ListBookingRoles {
	return &ListBookingRoles{repo: repo}
}

// Execute returns, for every staff member assigned to the booking, the
// role they must report and which halves are already filed. Members
// with no obligation are omitted. The result is a pure function of the
// booking's current rows; re-running it after any mutation yields the
// fresh classification.
func (uc *ListBookingRoles) Execute(
	ctx context.Context,
	bookingID uint,
) (*dto.BookingReportStatusDTO, error) {

	b, err := uc.repo.GetBookingWithBoat(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	assignments, err := uc.repo.ListAssignments(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	assignments = schedule.SanitizeAssignments(assignments)

	participants, err := uc.repo.ListParticipants(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	driverReports, err := uc.repo.ListDriverReports(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	coaches, drivers := domain.SplitAssignments(assignments)
	coachIDs := domain.IDs(coaches)
	driverIDs := domain.IDs(drivers)

	out := &dto.BookingReportStatusDTO{BookingID: bookingID}

	for _, member := range domain.Members(coaches, drivers) {
		role := domain.Classify(coachIDs, driverIDs, member.ID, b.Boat.IsFacility)
		if role == domain.RoleNone {
			continue
		}

		completion := domain.TrackCompletion(participants, driverReports, bookingID, member.ID)

		out.Members = append(out.Members, dto.MemberReportStatusDTO{
			StaffID:         member.ID,
			StaffName:       member.Name,
			RequiredRole:    role.String(),
			HasCoachReport:  completion.HasCoachReport,
			HasDriverReport: completion.HasDriverReport,
			Complete:        completion.Fulfilled(role),
		})
	}

	return out, nil
}
