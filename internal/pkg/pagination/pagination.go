package pagination

// Defaults mirror the storefront's listing pages: 20 cards per page, capped
// so a crafted query cannot drag the whole catalog through the gateway.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type Params struct {
	Page    int
	PerPage int
}

func NewParams(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Limit and Offset translate page numbering to the upstream's
// limit/offset query parameters.
func (p Params) Limit() int {
	return p.PerPage
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}
