package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/job"
	"github.com/siteledger/siteledger/internal/format"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

// CreateJobRequest carries the fields of a new job. Numeric and date
// fields arrive as text and are parsed at this boundary; an empty
// string always means "not provided", never zero.
type CreateJobRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Number         string          `json:"number,omitempty" validate:"omitempty,max=50"`
	ClientID       string          `json:"client_id,omitempty"`
	Address        string          `json:"address,omitempty" validate:"omitempty,max=500"`
	Description    string          `json:"description,omitempty"`
	ContractAmount string          `json:"contract_amount,omitempty"`
	StartDate      *string         `json:"start_date,omitempty"`
	EndDate        *string         `json:"end_date,omitempty"`
	JobStatus      types.JobStatus `json:"job_status,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.JobStatus != "" {
		if err := r.JobStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid job status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateJobRequest) ToJob(ctx context.Context) (*job.Job, error) {
	contractAmount, err := types.ParseOptionalDecimal("contract_amount", &r.ContractAmount)
	if err != nil {
		return nil, err
	}
	startDate, err := types.ParseOptionalDate("start_date", r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := types.ParseOptionalDate("end_date", r.EndDate)
	if err != nil {
		return nil, err
	}

	j := &job.Job{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		Name:        r.Name,
		Number:      r.Number,
		ClientID:    r.ClientID,
		Address:     r.Address,
		Description: r.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		JobStatus:   r.JobStatus,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	if contractAmount != nil {
		j.ContractAmount = *contractAmount
	}
	if j.Number == "" {
		j.Number = types.GenerateReferenceNumber(types.REF_PREFIX_JOB)
	}
	if j.JobStatus == "" {
		j.JobStatus = types.JobStatusPlanning
	}
	return j, nil
}

// UpdateJobRequest is a partial update. Only non-nil fields change the
// record; Version carries the concurrency token from the last read.
type UpdateJobRequest struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Number         *string          `json:"number,omitempty" validate:"omitempty,max=50"`
	ClientID       *string          `json:"client_id,omitempty"`
	Address        *string          `json:"address,omitempty" validate:"omitempty,max=500"`
	Description    *string          `json:"description,omitempty"`
	// ContractAmount submitted empty keeps the stored amount; the
	// column is non-nullable, so the field can be changed but not
	// cleared.
	ContractAmount *string          `json:"contract_amount,omitempty"`
	StartDate      *string          `json:"start_date,omitempty"`
	EndDate        *string          `json:"end_date,omitempty"`
	JobStatus      *types.JobStatus `json:"job_status,omitempty"`
	Version        int              `json:"version" validate:"min=1"`
}

func (r *UpdateJobRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.JobStatus != nil {
		if err := r.JobStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid job status").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// Apply copies the provided fields onto the job and stamps the
// caller's version for the optimistic concurrency check.
func (r *UpdateJobRequest) Apply(j *job.Job) error {
	if r.Name != nil {
		j.Name = *r.Name
	}
	if r.Number != nil {
		j.Number = *r.Number
	}
	if r.ClientID != nil {
		j.ClientID = *r.ClientID
	}
	if r.Address != nil {
		j.Address = *r.Address
	}
	if r.Description != nil {
		j.Description = *r.Description
	}
	if r.ContractAmount != nil {
		amount, err := types.ParseOptionalDecimal("contract_amount", r.ContractAmount)
		if err != nil {
			return err
		}
		if amount != nil {
			j.ContractAmount = *amount
		}
	}
	if r.StartDate != nil {
		startDate, err := types.ParseOptionalDate("start_date", r.StartDate)
		if err != nil {
			return err
		}
		j.StartDate = startDate
	}
	if r.EndDate != nil {
		endDate, err := types.ParseOptionalDate("end_date", r.EndDate)
		if err != nil {
			return err
		}
		j.EndDate = endDate
	}
	if r.JobStatus != nil {
		j.JobStatus = *r.JobStatus
	}
	j.Version = r.Version
	return nil
}

type JobResponse struct {
	*job.Job
	StatusBadge           types.BadgeVariant `json:"status_badge"`
	ContractAmountDisplay string             `json:"contract_amount_display"`
	StartDateDisplay      string             `json:"start_date_display"`
	EndDateDisplay        string             `json:"end_date_display"`
}

func NewJobResponse(j *job.Job) *JobResponse {
	return &JobResponse{
		Job:                   j,
		StatusBadge:           j.JobStatus.BadgeVariant(),
		ContractAmountDisplay: format.Currency(j.ContractAmount),
		StartDateDisplay:      format.OptionalDate(j.StartDate),
		EndDateDisplay:        format.OptionalDate(j.EndDate),
	}
}

// ListJobsResponse represents a paginated list of jobs
type ListJobsResponse = types.ListResponse[*JobResponse]
