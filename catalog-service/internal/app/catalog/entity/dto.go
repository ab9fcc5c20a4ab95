package entity

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductListResponse - ответ со списком товаров
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// MerchantListResponse - ответ со списком продавцов
type MerchantListResponse struct {
	Merchants []Merchant `json:"merchants"`
	Total     int        `json:"total"`
}
