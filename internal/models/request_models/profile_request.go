package request_models

// UpdateProfileRequest covers the settings form. Admission status and the
// admin flag are deliberately absent; they are not writable here.
type UpdateProfileRequest struct {
	FullName       string `json:"full_name"`
	PaymentDetails string `json:"payment_details"`
	BankName       string `json:"bank_name"`
	AccountNumber  string `json:"account_number"`
	RoutingNumber  string `json:"routing_number"`

	InstagramHandle string `json:"instagram_handle"`
	TiktokHandle    string `json:"tiktok_handle"`

	RevenueGoal float64 `json:"revenue_goal" binding:"gte=0"`
}
