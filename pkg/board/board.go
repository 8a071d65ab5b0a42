// Package board holds the pipeline projection of a user's deals: the three
// stage columns, the search/sort toolbar logic, and the optimistic
// status-move reconciliation used by drag-and-drop clients.
package board

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
)

type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceHigh SortMode = "price_high"
	SortPriceLow  SortMode = "price_low"
	SortDueDate   SortMode = "due_date"
)

// Columns in display order.
var Columns = []db_models.DealStatus{
	db_models.StatusLead,
	db_models.StatusWorking,
	db_models.StatusPaid,
}

type Snapshot struct {
	Columns map[db_models.DealStatus][]db_models.Deal `json:"columns"`
}

// Filter keeps deals whose brand name contains query, case-insensitively.
// An empty query keeps everything.
func Filter(deals []db_models.Deal, query string) []db_models.Deal {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return deals
	}

	out := make([]db_models.Deal, 0, len(deals))
	for _, d := range deals {
		if strings.Contains(strings.ToLower(d.BrandName), query) {
			out = append(out, d)
		}
	}
	return out
}

// Sort orders deals by mode. The sort is stable, and for due-date ordering
// deals without a due date always land after every dated deal, keeping
// their prior relative order.
func Sort(deals []db_models.Deal, mode SortMode) []db_models.Deal {
	out := make([]db_models.Deal, len(deals))
	copy(out, deals)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch mode {
		case SortPriceHigh:
			return a.Price > b.Price
		case SortPriceLow:
			return a.Price < b.Price
		case SortDueDate:
			switch {
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			default:
				return a.DueDate.Before(*b.DueDate)
			}
		default: // SortNewest
			return a.CreatedAt > b.CreatedAt
		}
	})

	return out
}

// Group splits deals into the three pipeline columns.
func Group(deals []db_models.Deal) Snapshot {
	snap := Snapshot{Columns: make(map[db_models.DealStatus][]db_models.Deal, len(Columns))}
	for _, col := range Columns {
		snap.Columns[col] = []db_models.Deal{}
	}
	for _, d := range deals {
		snap.Columns[d.Status] = append(snap.Columns[d.Status], d)
	}
	return snap
}

// Project applies the toolbar (search + sort) and groups into columns.
func Project(deals []db_models.Deal, query string, mode SortMode) Snapshot {
	return Group(Sort(Filter(deals, query), mode))
}

// Notifier receives the transient toasts a board surfaces after each move.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Mutator performs the authoritative server-side status change.
type Mutator func(dealID uuid.UUID, status db_models.DealStatus) error

// Board is the client-side in-memory projection that reconciles optimistic
// moves against server confirmation.
type Board struct {
	deals    []db_models.Deal
	notifier Notifier
	mutate   Mutator
}

func New(deals []db_models.Deal, notifier Notifier, mutate Mutator) *Board {
	out := make([]db_models.Deal, len(deals))
	copy(out, deals)
	return &Board{deals: out, notifier: notifier, mutate: mutate}
}

// Deals returns the current projection.
func (b *Board) Deals() []db_models.Deal {
	out := make([]db_models.Deal, len(b.deals))
	copy(out, b.deals)
	return out
}

func (b *Board) find(dealID uuid.UUID) *db_models.Deal {
	for i := range b.deals {
		if b.deals[i].ID == dealID {
			return &b.deals[i]
		}
	}
	return nil
}

// MoveDeal applies target optimistically, issues the server mutation, and
// on failure restores the exact prior status (captured before the
// optimistic write) while surfacing exactly one error toast.
func (b *Board) MoveDeal(dealID uuid.UUID, target db_models.DealStatus) {
	deal := b.find(dealID)
	if deal == nil || deal.Status == target {
		return
	}

	prior := deal.Status
	deal.Status = target

	if err := b.mutate(dealID, target); err != nil {
		deal.Status = prior
		b.notifier.Error("Failed to update status")
		return
	}

	b.notifier.Success("Status updated!")
}
