package shares

type PriceResponse struct {
	Price float64 `json:"price"`
}
