package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ApplyRequest is the combined signup + admission application form.
type ApplyRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`

	Instagram string `json:"instagram"`
	Tiktok    string `json:"tiktok"`
	Youtube   string `json:"youtube"`
	Website   string `json:"website"`

	BrandDealsCount     string `json:"brand_deals_count"`
	BiggestDealSize     string `json:"biggest_deal_size"`
	IsAgencyRepresented bool   `json:"is_agency_represented"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
