package types

type VendorFilter struct {
	*QueryFilter
	*TimeRangeFilter

	VendorIDs []string `form:"vendor_ids" json:"vendor_ids"`
	Trade     string   `form:"trade" json:"trade"`
}

func NewDefaultVendorFilter() *VendorFilter {
	return &VendorFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitVendorFilter() *VendorFilter {
	return &VendorFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *VendorFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	return f.TimeRangeFilter.Validate()
}
