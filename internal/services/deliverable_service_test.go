package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
	"dealflow/pkg/utils"
)

func seedDealWithOwner(t *testing.T, dealRepo *fakeDealRepo, owner uuid.UUID) uuid.UUID {
	t.Helper()
	deal := &db_models.Deal{BrandName: "Glossier", ContactEmail: "pr@glossier.com", Price: 1200}
	deal.UserID = owner
	if err := dealRepo.Insert(context.Background(), deal); err != nil {
		t.Fatalf("seed deal: %v", err)
	}
	return deal.ID
}

func TestAddDeliverableRequiresLabel(t *testing.T) {
	dealRepo := newFakeDealRepo()
	svc := NewDeliverableService(newFakeDeliverableRepo(dealRepo))
	owner := uuid.New()
	dealID := seedDealWithOwner(t, dealRepo, owner)

	for _, label := range []string{"", "   "} {
		if _, err := svc.AddDeliverable(context.Background(), owner, dealID, label); !errors.Is(err, utils.ErrValidation) {
			t.Errorf("label %q: got %v, want ErrValidation", label, err)
		}
	}
}

func TestAddDeliverableToForeignDealLooksMissing(t *testing.T) {
	dealRepo := newFakeDealRepo()
	deliverableRepo := newFakeDeliverableRepo(dealRepo)
	svc := NewDeliverableService(deliverableRepo)
	owner := uuid.New()
	stranger := uuid.New()
	dealID := seedDealWithOwner(t, dealRepo, owner)

	if _, err := svc.AddDeliverable(context.Background(), stranger, dealID, "Draft submitted"); !errors.Is(err, utils.ErrNotFoundOrForbidden) {
		t.Fatalf("foreign add: got %v, want ErrNotFoundOrForbidden", err)
	}
	if len(deliverableRepo.deliverables) != 0 {
		t.Errorf("foreign add persisted %d rows", len(deliverableRepo.deliverables))
	}
}

func TestListForDealPreservesInsertionOrder(t *testing.T) {
	dealRepo := newFakeDealRepo()
	svc := NewDeliverableService(newFakeDeliverableRepo(dealRepo))
	owner := uuid.New()
	dealID := seedDealWithOwner(t, dealRepo, owner)

	labels := []string{"Draft submitted", "Content posted", "Proof uploaded", "Usage rights signed"}
	for _, l := range labels {
		if _, err := svc.AddDeliverable(context.Background(), owner, dealID, l); err != nil {
			t.Fatalf("AddDeliverable(%q): %v", l, err)
		}
	}

	got, err := svc.ListForDeal(context.Background(), owner, dealID)
	if err != nil {
		t.Fatalf("ListForDeal: %v", err)
	}
	if len(got) != len(labels) {
		t.Fatalf("len = %d, want %d", len(got), len(labels))
	}
	for i, d := range got {
		if d.Label != labels[i] {
			t.Errorf("position %d: got %q, want %q", i, d.Label, labels[i])
		}
		if d.Completed {
			t.Errorf("%q created already completed", d.Label)
		}
	}
}

func TestChildMutationsDeriveOwnershipFromParent(t *testing.T) {
	dealRepo := newFakeDealRepo()
	deliverableRepo := newFakeDeliverableRepo(dealRepo)
	svc := NewDeliverableService(deliverableRepo)
	owner := uuid.New()
	stranger := uuid.New()
	dealID := seedDealWithOwner(t, dealRepo, owner)

	d, err := svc.AddDeliverable(context.Background(), owner, dealID, "Content posted")
	if err != nil {
		t.Fatalf("AddDeliverable: %v", err)
	}

	// A valid deliverable id belonging to someone else's deal behaves like a
	// missing row for every mutation.
	if err := svc.ToggleDeliverable(context.Background(), stranger, d.ID, true); !errors.Is(err, utils.ErrNotFoundOrForbidden) {
		t.Errorf("foreign toggle: got %v", err)
	}
	if err := svc.UpdateProof(context.Background(), stranger, d.ID, "https://instagram.com/p/abc"); !errors.Is(err, utils.ErrNotFoundOrForbidden) {
		t.Errorf("foreign proof: got %v", err)
	}
	if err := svc.DeleteDeliverable(context.Background(), stranger, d.ID); !errors.Is(err, utils.ErrNotFoundOrForbidden) {
		t.Errorf("foreign delete: got %v", err)
	}

	stored := deliverableRepo.deliverables[d.ID]
	if stored == nil {
		t.Fatal("deliverable deleted by non-owner")
	}
	if stored.Completed || stored.ProofURL != nil {
		t.Errorf("deliverable mutated by non-owner: %+v", stored)
	}

	// The owner's mutations land.
	if err := svc.ToggleDeliverable(context.Background(), owner, d.ID, true); err != nil {
		t.Fatalf("owner toggle: %v", err)
	}
	if err := svc.UpdateProof(context.Background(), owner, d.ID, "https://instagram.com/p/abc"); err != nil {
		t.Fatalf("owner proof: %v", err)
	}
	stored = deliverableRepo.deliverables[d.ID]
	if !stored.Completed || stored.ProofURL == nil || *stored.ProofURL != "https://instagram.com/p/abc" {
		t.Errorf("owner mutations not applied: %+v", stored)
	}

	if err := svc.DeleteDeliverable(context.Background(), owner, d.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, ok := deliverableRepo.deliverables[d.ID]; ok {
		t.Error("deliverable survived owner delete")
	}
}

func TestEmptyProofClearsTheLink(t *testing.T) {
	dealRepo := newFakeDealRepo()
	deliverableRepo := newFakeDeliverableRepo(dealRepo)
	svc := NewDeliverableService(deliverableRepo)
	owner := uuid.New()
	dealID := seedDealWithOwner(t, dealRepo, owner)

	d, err := svc.AddDeliverable(context.Background(), owner, dealID, "Content posted")
	if err != nil {
		t.Fatalf("AddDeliverable: %v", err)
	}

	if err := svc.UpdateProof(context.Background(), owner, d.ID, "https://instagram.com/p/abc"); err != nil {
		t.Fatalf("set proof: %v", err)
	}
	if deliverableRepo.deliverables[d.ID].ProofURL == nil {
		t.Fatal("proof not set")
	}

	if err := svc.UpdateProof(context.Background(), owner, d.ID, ""); err != nil {
		t.Fatalf("clear proof: %v", err)
	}
	if got := deliverableRepo.deliverables[d.ID].ProofURL; got != nil {
		t.Errorf("proof = %q after clearing, want nil", *got)
	}
}

func TestToggleIsIdempotentPerDirection(t *testing.T) {
	dealRepo := newFakeDealRepo()
	deliverableRepo := newFakeDeliverableRepo(dealRepo)
	svc := NewDeliverableService(deliverableRepo)
	owner := uuid.New()
	dealID := seedDealWithOwner(t, dealRepo, owner)

	d, err := svc.AddDeliverable(context.Background(), owner, dealID, "Proof uploaded")
	if err != nil {
		t.Fatalf("AddDeliverable: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.ToggleDeliverable(context.Background(), owner, d.ID, true); err != nil {
			t.Fatalf("toggle #%d: %v", i+1, err)
		}
	}
	if !deliverableRepo.deliverables[d.ID].Completed {
		t.Error("completed flag lost")
	}
}
