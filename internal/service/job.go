package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(ctx context.Context, id string) (*dto.JobResponse, error)
	ListJobs(ctx context.Context, filter *types.JobFilter) (*dto.ListJobsResponse, error)
	UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	ArchiveJob(ctx context.Context, id string) error
}

type jobService struct {
	ServiceParams
}

func NewJobService(params ServiceParams) JobService {
	return &jobService{ServiceParams: params}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A job may reference a client; the reference must resolve inside
	// the caller's tenant.
	if req.ClientID != "" {
		if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
			if ierr.IsNotFound(err) {
				return nil, ierr.NewError("client not found").
					WithHintf("Client %s does not exist", req.ClientID).
					Mark(ierr.ErrValidation)
			}
			return nil, err
		}
	}

	j, err := req.ToJob(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.JobRepo.Create(ctx, j); err != nil {
		return nil, err
	}

	s.Logger.Infow("created job", "job_id", j.ID, "name", j.Name)
	return dto.NewJobResponse(j), nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*dto.JobResponse, error) {
	j, err := s.JobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewJobResponse(j), nil
}

func (s *jobService) ListJobs(ctx context.Context, filter *types.JobFilter) (*dto.ListJobsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultJobFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	jobs, err := s.JobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.JobRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListJobsResponse{
		Items: make([]*dto.JobResponse, len(jobs)),
	}
	for i, j := range jobs {
		resp.Items[i] = dto.NewJobResponse(j)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	j, err := s.JobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ClientID != nil && *req.ClientID != "" && *req.ClientID != j.ClientID {
		if _, err := s.ClientRepo.Get(ctx, *req.ClientID); err != nil {
			if ierr.IsNotFound(err) {
				return nil, ierr.NewError("client not found").
					WithHintf("Client %s does not exist", *req.ClientID).
					Mark(ierr.ErrValidation)
			}
			return nil, err
		}
	}

	if err := req.Apply(j); err != nil {
		return nil, err
	}
	if err := s.JobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated job", "job_id", j.ID, "version", j.Version)
	return dto.NewJobResponse(j), nil
}

func (s *jobService) ArchiveJob(ctx context.Context, id string) error {
	if err := s.JobRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived job", "job_id", id)
	return nil
}
