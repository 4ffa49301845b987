package types

// PageParams are the optional page/limit arguments of the paged queries.
type PageParams struct {
	Page  *uint32 `json:"page,omitempty"`
	Limit *uint32 `json:"limit,omitempty"`
}

func NewPageParams(page, limit uint32) PageParams {
	p := PageParams{}
	if page != 0 {
		p.Page = &page
	}
	if limit != 0 {
		p.Limit = &limit
	}
	return p
}

// RangeParams are the optional start_after/limit arguments of the cw-storage
// range queries.
type RangeParams struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

func NewRangeParams(startAfter string, limit uint32) RangeParams {
	p := RangeParams{}
	if startAfter != "" {
		p.StartAfter = &startAfter
	}
	if limit != 0 {
		p.Limit = &limit
	}
	return p
}

// OptionalString returns nil for the empty string.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
