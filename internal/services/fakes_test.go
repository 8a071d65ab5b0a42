package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

// In-memory repository fakes. They reproduce the compound ownership
// predicates of the real GORM repositories so service tests exercise the
// same "zero rows affected" paths.

type fakeDealRepo struct {
	deals  map[uuid.UUID]*db_models.Deal
	broken bool
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{deals: make(map[uuid.UUID]*db_models.Deal)}
}

func (f *fakeDealRepo) Insert(ctx context.Context, deal *db_models.Deal) error {
	if f.broken {
		return errors.New("insert failed")
	}
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	now := time.Now().Unix()
	deal.CreatedAt = now
	deal.UpdatedAt = now
	cp := *deal
	f.deals[deal.ID] = &cp
	return nil
}

func (f *fakeDealRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Deal, error) {
	var out []db_models.Deal
	for _, d := range f.deals {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDealRepo) FindByIDForUser(ctx context.Context, dealID, userID uuid.UUID) (*db_models.Deal, error) {
	d, ok := f.deals[dealID]
	if !ok || d.UserID != userID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDealRepo) UpdateFields(ctx context.Context, dealID, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	d, ok := f.deals[dealID]
	if !ok || d.UserID != userID {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "brand_name":
			d.BrandName = v.(string)
		case "contact_email":
			d.ContactEmail = v.(string)
		case "price":
			d.Price = v.(float64)
		case "status":
			d.Status = v.(db_models.DealStatus)
		case "platform":
			d.Platform = v.(string)
		case "due_date":
			if v == nil {
				d.DueDate = nil
			} else {
				d.DueDate = v.(*time.Time)
			}
		}
	}
	d.UpdatedAt = time.Now().Unix()
	return 1, nil
}

func (f *fakeDealRepo) UpdateStatus(ctx context.Context, dealID, userID uuid.UUID, status db_models.DealStatus) (int64, error) {
	d, ok := f.deals[dealID]
	if !ok || d.UserID != userID {
		return 0, nil
	}
	d.Status = status
	d.UpdatedAt = time.Now().Unix()
	return 1, nil
}

func (f *fakeDealRepo) DeleteWithDeliverables(ctx context.Context, dealID, userID uuid.UUID) (int64, error) {
	d, ok := f.deals[dealID]
	if !ok || d.UserID != userID {
		return 0, nil
	}
	delete(f.deals, dealID)
	return 1, nil
}

type fakeDeliverableRepo struct {
	dealRepo     *fakeDealRepo
	deliverables map[uuid.UUID]*db_models.Deliverable
	order        []uuid.UUID
	failInsert   bool
}

func newFakeDeliverableRepo(dealRepo *fakeDealRepo) *fakeDeliverableRepo {
	return &fakeDeliverableRepo{
		dealRepo:     dealRepo,
		deliverables: make(map[uuid.UUID]*db_models.Deliverable),
	}
}

func (f *fakeDeliverableRepo) owns(id, userID uuid.UUID) bool {
	d, ok := f.deliverables[id]
	if !ok {
		return false
	}
	parent, ok := f.dealRepo.deals[d.DealID]
	return ok && parent.UserID == userID
}

func (f *fakeDeliverableRepo) Insert(ctx context.Context, deliverable *db_models.Deliverable) error {
	if f.failInsert {
		return errors.New("insert failed")
	}
	if deliverable.ID == uuid.Nil {
		deliverable.ID = uuid.New()
	}
	deliverable.CreatedAt = time.Now().UnixNano()
	cp := *deliverable
	f.deliverables[deliverable.ID] = &cp
	f.order = append(f.order, deliverable.ID)
	return nil
}

func (f *fakeDeliverableRepo) InsertBatch(ctx context.Context, deliverables []db_models.Deliverable) error {
	if f.failInsert {
		return errors.New("batch insert failed")
	}
	for i := range deliverables {
		if err := f.Insert(ctx, &deliverables[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeDeliverableRepo) ListForDeal(ctx context.Context, dealID, userID uuid.UUID) ([]db_models.Deliverable, error) {
	parent, ok := f.dealRepo.deals[dealID]
	if !ok || parent.UserID != userID {
		return nil, nil
	}
	out := []db_models.Deliverable{}
	for _, id := range f.order {
		if d, ok := f.deliverables[id]; ok && d.DealID == dealID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDeliverableRepo) Toggle(ctx context.Context, id, userID uuid.UUID, completed bool) (int64, error) {
	if !f.owns(id, userID) {
		return 0, nil
	}
	f.deliverables[id].Completed = completed
	return 1, nil
}

func (f *fakeDeliverableRepo) UpdateProof(ctx context.Context, id, userID uuid.UUID, proof string) (int64, error) {
	if !f.owns(id, userID) {
		return 0, nil
	}
	if proof == "" {
		f.deliverables[id].ProofURL = nil
	} else {
		f.deliverables[id].ProofURL = &proof
	}
	return 1, nil
}

func (f *fakeDeliverableRepo) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	if !f.owns(id, userID) {
		return 0, nil
	}
	delete(f.deliverables, id)
	return 1, nil
}

func (f *fakeDeliverableRepo) DealExistsForUser(ctx context.Context, dealID, userID uuid.UUID) (bool, error) {
	d, ok := f.dealRepo.deals[dealID]
	return ok && d.UserID == userID, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*db_models.Profile // keyed by account id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*db_models.Profile)}
}

func (f *fakeProfileRepo) add(p db_models.Profile) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.profiles[p.AccountID] = &p
}

func (f *fakeProfileRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	p, ok := f.profiles[accountID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) UpsertSettings(ctx context.Context, accountID uuid.UUID, fields map[string]interface{}) (*db_models.Profile, error) {
	p, ok := f.profiles[accountID]
	if !ok {
		p = &db_models.Profile{AccountID: accountID}
		p.ID = uuid.New()
		f.profiles[accountID] = p
	}
	for k, v := range fields {
		switch k {
		case "full_name":
			p.FullName = v.(string)
		case "payment_details":
			p.PaymentDetails = v.(string)
		case "bank_name":
			p.BankName = v.(string)
		case "account_number":
			p.AccountNumber = v.(string)
		case "routing_number":
			p.RoutingNumber = v.(string)
		case "instagram_handle":
			p.InstagramHandle = v.(string)
		case "tiktok_handle":
			p.TiktokHandle = v.(string)
		case "revenue_goal":
			p.RevenueGoal = v.(float64)
		}
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) ListPending(ctx context.Context) ([]db_models.Profile, error) {
	out := []db_models.Profile{}
	for _, p := range f.profiles {
		if p.ApplicationStatus == db_models.ApplicationPending {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) SetApplicationStatus(ctx context.Context, accountID uuid.UUID, status db_models.ApplicationStatus) (int64, error) {
	p, ok := f.profiles[accountID]
	if !ok || p.ApplicationStatus != db_models.ApplicationPending {
		return 0, nil
	}
	p.ApplicationStatus = status
	return 1, nil
}

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account // keyed by email
	profiles *fakeProfileRepo
}

func newFakeAccountRepo(profiles *fakeProfileRepo) *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*db_models.Account),
		profiles: profiles,
	}
}

func (f *fakeAccountRepo) InsertWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error {
	if _, exists := f.accounts[account.Email]; exists {
		return utils.ErrEmailAlreadyExists
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	f.accounts[account.Email] = &cp

	profile.AccountID = account.ID
	profile.Email = account.Email
	if f.profiles != nil {
		f.profiles.add(*profile)
	}
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.ID.String() == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	a, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	if a, ok := f.accounts[email]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

type fakeDashboardRepo struct {
	statusRows   []repositories.StatusAggRow
	platformRows []repositories.PlatformAggRow
	monthRevenue float64
	series       []repositories.RevenueRow
}

func (f *fakeDashboardRepo) AggregateByStatus(ctx context.Context, userID uuid.UUID) ([]repositories.StatusAggRow, error) {
	return f.statusRows, nil
}

func (f *fakeDashboardRepo) AggregateByPlatform(ctx context.Context, userID uuid.UUID) ([]repositories.PlatformAggRow, error) {
	return f.platformRows, nil
}

func (f *fakeDashboardRepo) PaidRevenueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (float64, error) {
	return f.monthRevenue, nil
}

func (f *fakeDashboardRepo) MonthlyPaidRevenue(ctx context.Context, userID uuid.UUID, since time.Time) ([]repositories.RevenueRow, error) {
	return f.series, nil
}

// fakeMailService counts dispatches and can be told to fail.
type fakeMailService struct {
	invoiceSends int
	welcomeSends int
	resetSends   int
	fail         bool
	lastTo       string
}

func (f *fakeMailService) SendInvoiceEmail(to string, inv InvoiceEmailData) error {
	f.invoiceSends++
	f.lastTo = to
	if f.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (f *fakeMailService) SendWelcomeEmail(to, fullName string) error {
	f.welcomeSends++
	f.lastTo = to
	if f.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (f *fakeMailService) SendMailToResetPassword(to, token string) error {
	f.resetSends++
	f.lastTo = to
	if f.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

var (
	_ repositories.DealRepository        = (*fakeDealRepo)(nil)
	_ repositories.DeliverableRepository = (*fakeDeliverableRepo)(nil)
	_ repositories.ProfileRepository     = (*fakeProfileRepo)(nil)
	_ repositories.DashboardRepository   = (*fakeDashboardRepo)(nil)
	_ repositories.AccountRepository     = (*fakeAccountRepo)(nil)
	_ IMailService                       = (*fakeMailService)(nil)
)
