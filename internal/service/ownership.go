package service

import (
	"context"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

// ensureJob verifies that the referenced job exists inside the caller's
// tenant before any child record is written against it. Archived jobs
// and other tenants' jobs both fail this check the same way.
func (p ServiceParams) ensureJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return ierr.NewError("job_id is required").
			WithHint("A job reference is required").
			Mark(ierr.ErrValidation)
	}
	if _, err := p.JobRepo.Get(ctx, jobID); err != nil {
		if ierr.IsNotFound(err) {
			return ierr.NewError("job not found").
				WithHintf("Job %s does not exist", jobID).
				Mark(ierr.ErrNotFound)
		}
		return err
	}
	return nil
}

// ensureVendor verifies a vendor reference the same way.
func (p ServiceParams) ensureVendor(ctx context.Context, vendorID string) error {
	if vendorID == "" {
		return ierr.NewError("vendor_id is required").
			WithHint("A vendor reference is required").
			Mark(ierr.ErrValidation)
	}
	if _, err := p.VendorRepo.Get(ctx, vendorID); err != nil {
		if ierr.IsNotFound(err) {
			return ierr.NewError("vendor not found").
				WithHintf("Vendor %s does not exist", vendorID).
				Mark(ierr.ErrNotFound)
		}
		return err
	}
	return nil
}
