package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/samadhan-setu/grievance-service/internal/access"
	"github.com/samadhan-setu/grievance-service/internal/analytics"
	"github.com/samadhan-setu/grievance-service/internal/domain"
	"github.com/samadhan-setu/grievance-service/internal/events"
	"github.com/samadhan-setu/grievance-service/internal/repository"
	apperrors "github.com/samadhan-setu/grievance-service/pkg/util"
)

// ComplaintService coordinates the grievance workflows.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
}

// NewComplaintService constructs the service.
func NewComplaintService(complaints repository.ComplaintRepository, dispatcher events.Dispatcher) *ComplaintService {
	return &ComplaintService{complaints: complaints, dispatcher: dispatcher}
}

// Submit files a new complaint for a citizen. Status is forced to PENDING;
// classification arrives later from the annotator pipeline.
func (s *ComplaintService) Submit(ctx context.Context, citizen *domain.User, text string) (*domain.Complaint, error) {
	if citizen.Role != domain.RoleCitizen {
		return nil, apperrors.NewForbidden("only citizens submit complaints")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("complaint text required", nil)
	}

	complaint := &domain.Complaint{
		ReferenceKey: "GRV-" + strings.ToUpper(uuid.NewString()[:8]),
		CitizenID:    citizen.ID,
		Text:         text,
		Status:       domain.ComplaintStatusPending,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintSubmitted,
		ComplaintID: complaint.ID,
		ActorID:     citizen.ID,
		Payload: events.ComplaintSubmittedPayload{
			CitizenID: citizen.ID,
			Text:      complaint.Text,
		},
	})
	return complaint, nil
}

// ListForViewer returns the complaints the viewer's role may see: citizens
// their own, the CM everything, department tiers their classified slice.
func (s *ComplaintService) ListForViewer(ctx context.Context, viewer *domain.User) ([]domain.Complaint, error) {
	filter := repository.ComplaintFilter{}
	switch viewer.Role {
	case domain.RoleCitizen:
		filter.CitizenID = &viewer.ID
	case domain.RoleAdminCM:
		// no scoping
	case domain.RoleHeadDept:
		filter.Department = viewer.Department
	case domain.RoleHeadSub:
		filter.Department = viewer.Department
		filter.SubDepartment = viewer.SubDepartment
	default:
		return nil, apperrors.NewForbidden("unknown role")
	}
	return s.complaints.ListWithFilter(ctx, filter)
}

// ListFiltered returns complaints scoped to a department and optional
// sub-department. Officials only; department heads cannot peek into other
// departments.
func (s *ComplaintService) ListFiltered(ctx context.Context, viewer *domain.User, dept, sub string) ([]domain.Complaint, error) {
	if !viewer.Role.IsOfficial() {
		return nil, apperrors.NewForbidden("officials only")
	}
	if dept == "" {
		return nil, apperrors.NewValidationError("dept query parameter required", nil)
	}
	if viewer.Role != domain.RoleAdminCM && viewer.DepartmentName() != dept {
		return nil, apperrors.NewForbidden("department out of scope")
	}

	filter := repository.ComplaintFilter{Department: &dept}
	if sub != "" {
		filter.SubDepartment = &sub
	}
	return s.complaints.ListWithFilter(ctx, filter)
}

// StatsForViewer folds the viewer's complaint scope into the KPI rollup.
func (s *ComplaintService) StatsForViewer(ctx context.Context, viewer *domain.User) (analytics.Stats, error) {
	complaints, err := s.ListForViewer(ctx, viewer)
	if err != nil {
		return analytics.Stats{}, err
	}
	return analytics.ComputeStats(complaints), nil
}

// Resolve moves one complaint out of PENDING. The transition is one-way:
// re-resolving an already RESOLVED or REJECTED complaint is a conflict.
func (s *ComplaintService) Resolve(ctx context.Context, official *domain.User, complaintID string, status domain.ComplaintStatus, remarks string) (*domain.Complaint, error) {
	if !access.CanResolve(official.Role) {
		return nil, apperrors.NewForbidden("officials only")
	}
	if !status.Terminal() {
		return nil, apperrors.NewValidationError("status must be RESOLVED or REJECTED", nil)
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, apperrors.NewValidationError("resolution remarks required", nil)
	}

	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("complaint", nil)
		}
		return nil, err
	}
	if !s.inScope(official, complaint) {
		return nil, apperrors.NewForbidden("complaint out of scope")
	}
	if !complaint.CanTransition(status) {
		return nil, apperrors.NewConflict("complaint already resolved", map[string]any{
			"status": complaint.Status,
		})
	}

	now := time.Now()
	if err := s.complaints.UpdateResolution(ctx, complaint.ID, status, remarks, now); err != nil {
		if err == pgx.ErrNoRows {
			// Lost the race with another resolver between fetch and update.
			return nil, apperrors.NewConflict("complaint already resolved", nil)
		}
		return nil, err
	}

	oldStatus := complaint.Status
	complaint.Status = status
	complaint.ResolutionRemarks = &remarks
	complaint.ResolvedAt = &now

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		ActorID:     official.ID,
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
			Remarks:   remarks,
		},
	})
	return complaint, nil
}

// inScope checks whether the official's department covers the complaint.
// Unclassified complaints are visible only to the CM.
func (s *ComplaintService) inScope(official *domain.User, complaint *domain.Complaint) bool {
	if official.Role == domain.RoleAdminCM {
		return true
	}
	if complaint.Classification == nil {
		return false
	}
	if official.DepartmentName() != complaint.Classification.Department {
		return false
	}
	if official.Role == domain.RoleHeadSub && official.SubDepartment != nil {
		return complaint.Classification.EffectiveSubDepartment() == *official.SubDepartment
	}
	return true
}

func (s *ComplaintService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
