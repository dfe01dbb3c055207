package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// ComplaintFilter captures listing parameters. Department matching runs
// against the annotator's classification.
type ComplaintFilter struct {
	CitizenID     *string
	Department    *string
	SubDepartment *string
	Statuses      []domain.ComplaintStatus
	Limit         int
	Offset        int
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error)
	// UpdateResolution moves a complaint out of PENDING. Rows already in a
	// terminal status are not touched; pgx.ErrNoRows signals the miss.
	UpdateResolution(ctx context.Context, id string, status domain.ComplaintStatus, remarks string, resolvedAt time.Time) error
	// SetClassification attaches the annotator output once.
	SetClassification(ctx context.Context, id string, classification *domain.Classification) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (reference_key, citizen_id, text, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.ReferenceKey,
		complaint.CitizenID,
		complaint.Text,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

const complaintSelect = `
        SELECT id, reference_key, citizen_id, text, status, resolution_remarks,
               ai_department, ai_sub_department, ai_priority, ai_summary,
               created_at, updated_at, resolved_at
        FROM complaints`

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := scanComplaint(r.pool.QueryRow(ctx, complaintSelect+` WHERE id=$1`, id), &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.CitizenID != nil {
		args = append(args, *filter.CitizenID)
		clauses = append(clauses, fmt.Sprintf("citizen_id=$%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("ai_department=$%d", len(args)))
	}
	if filter.SubDepartment != nil {
		args = append(args, *filter.SubDepartment)
		clauses = append(clauses, fmt.Sprintf("ai_sub_department=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC", complaintSelect, strings.Join(clauses, " AND "))
	if filter.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, filter.Limit)
	}
	if filter.Offset > 0 {
		query = fmt.Sprintf("%s OFFSET %d", query, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := scanComplaint(rows, &complaint); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) UpdateResolution(ctx context.Context, id string, status domain.ComplaintStatus, remarks string, resolvedAt time.Time) error {
	const query = `
        UPDATE complaints SET status=$1, resolution_remarks=$2, resolved_at=$3, updated_at=NOW()
        WHERE id=$4 AND status='PENDING'`
	cmd, err := r.pool.Exec(ctx, query, status, remarks, resolvedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) SetClassification(ctx context.Context, id string, classification *domain.Classification) error {
	const query = `
        UPDATE complaints SET ai_department=$1, ai_sub_department=$2, ai_priority=$3, ai_summary=$4, updated_at=NOW()
        WHERE id=$5 AND ai_department IS NULL`
	cmd, err := r.pool.Exec(ctx, query,
		classification.Department,
		classification.SubDepartment,
		classification.Priority,
		classification.Summary,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanComplaint(row pgx.Row, complaint *domain.Complaint) error {
	var (
		aiDepartment    *string
		aiSubDepartment *string
		aiPriority      *string
		aiSummary       *string
	)
	if err := row.Scan(
		&complaint.ID,
		&complaint.ReferenceKey,
		&complaint.CitizenID,
		&complaint.Text,
		&complaint.Status,
		&complaint.ResolutionRemarks,
		&aiDepartment,
		&aiSubDepartment,
		&aiPriority,
		&aiSummary,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
		&complaint.ResolvedAt,
	); err != nil {
		return err
	}

	if aiDepartment != nil {
		classification := &domain.Classification{
			Department:    *aiDepartment,
			SubDepartment: aiSubDepartment,
		}
		if aiPriority != nil {
			classification.Priority = domain.Priority(*aiPriority)
		}
		if aiSummary != nil {
			classification.Summary = *aiSummary
		}
		complaint.Classification = classification
	}
	return nil
}
