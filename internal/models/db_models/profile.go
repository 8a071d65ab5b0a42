package db_models

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Profile is one-to-one with Account. Settings fields are written by the
// owning user; ApplicationStatus only ever changes through the admission
// workflow, and IsAdmin never changes through the API at all.
type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`

	PaymentDetails string `json:"payment_details"`
	BankName       string `json:"bank_name"`
	AccountNumber  string `json:"account_number"`
	RoutingNumber  string `json:"routing_number"`

	InstagramHandle string `json:"instagram_handle"`
	TiktokHandle    string `json:"tiktok_handle"`
	SocialHandle    string `json:"social_handle"`

	BrandDealsCount     string `json:"brand_deals_count"`
	BiggestDealSize     string `json:"biggest_deal_size"`
	IsAgencyRepresented bool   `json:"is_agency_represented"`

	RevenueGoal float64 `gorm:"default:0" json:"revenue_goal"`

	ApplicationStatus ApplicationStatus `gorm:"default:pending" json:"application_status"`
	IsAdmin           bool              `gorm:"default:false" json:"is_admin"`
}
