package request_models

// DealRequest carries the raw deal form. Price and DueDate arrive as strings
// and go through one explicit coercion step in the service before anything
// is persisted.
type DealRequest struct {
	BrandName    string `json:"brand_name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	Price        string `json:"price" binding:"required"`
	Status       string `json:"status"`
	Platform     string `json:"platform"`
	DueDate      string `json:"due_date"`
}

type UpdateDealStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SendInvoiceRequest struct {
	Email string `json:"email" binding:"required,email"`
}
