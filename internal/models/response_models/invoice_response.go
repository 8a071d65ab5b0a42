package response_models

import "dealflow/internal/models/db_models"

// InvoiceResponse bundles everything the invoice view needs: the deal and
// the owner's payout details.
type InvoiceResponse struct {
	Deal    db_models.Deal     `json:"deal"`
	Profile *db_models.Profile `json:"profile,omitempty"`
}
