package dto

import "github.com/guttosm/stockmetrics/internal/domain/models"

// ReturnDTO is one daily return on the wire.
type ReturnDTO struct {
	Date             string  `json:"date" example:"2024-03-01"`
	DecimalReturn    float64 `json:"decimalReturn" example:"0.1"`
	PercentileReturn string  `json:"percentileReturn" example:"10.000"`
}

// ReturnsResponse represents the JSON body of GET /api/return.
type ReturnsResponse struct {
	Returns []ReturnDTO `json:"returns"`
}

// AlphaDTO is the excess return of one day on the wire.
type AlphaDTO struct {
	Date   string  `json:"date" example:"2024-03-01"`
	Result float64 `json:"result" example:"0.06"`
}

// AlphaResponse represents the JSON body of GET /api/alpha.
type AlphaResponse struct {
	Alpha []AlphaDTO `json:"alpha"`
}

// NewReturnsResponse maps domain records onto the wire format. The slice is
// never nil so an empty series encodes as [].
func NewReturnsResponse(records []models.ReturnRecord) ReturnsResponse {
	out := make([]ReturnDTO, len(records))
	for i, r := range records {
		out[i] = ReturnDTO{
			Date:             r.Date.Format(models.DateLayout),
			DecimalReturn:    r.DecimalReturn,
			PercentileReturn: r.PercentileReturn,
		}
	}
	return ReturnsResponse{Returns: out}
}

// NewAlphaResponse maps alpha records onto the wire format.
func NewAlphaResponse(records []models.AlphaRecord) AlphaResponse {
	out := make([]AlphaDTO, len(records))
	for i, r := range records {
		out[i] = AlphaDTO{Date: r.Date.Format(models.DateLayout), Result: r.Result}
	}
	return AlphaResponse{Alpha: out}
}
