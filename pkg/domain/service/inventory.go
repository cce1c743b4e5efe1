package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/model"
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// InventoryService owns the in-memory catalog index and keeps it in sync
// with the durable store. Every mutation is written to the store first; the
// index is touched only after the store confirms, so a failed write leaves
// memory exactly as it was.
type InventoryService interface {
	Add(ctx context.Context, p *model.Product) error
	Remove(ctx context.Context, id int64) error
	UpdateQuantity(ctx context.Context, id int64, newQuantity int) error
	UpdatePrice(ctx context.Context, id int64, newPrice float64) error
	SearchByName(text string) []model.Snapshot
	ListAll() []model.Snapshot
	Reload(ctx context.Context) error
}

// NewInventory builds the service and performs the initial load from the
// durable store. A load failure means the store is unreachable or corrupt
// and the caller must treat it as fatal.
func NewInventory(ctx context.Context, repo model.ProductRepository, dispatcher EventDispatcher) (InventoryService, error) {
	inv := &inventory{
		repo:       repo,
		dispatcher: dispatcher,
		items:      make(map[int64]*model.Product),
		names:      make(map[string]struct{}),
	}
	if err := inv.Reload(ctx); err != nil {
		return nil, err
	}
	return inv, nil
}

type inventory struct {
	repo       model.ProductRepository
	dispatcher EventDispatcher

	// items is the primary index and the single source of truth for id
	// existence; names mirrors the name column for O(1) uniqueness checks.
	items map[int64]*model.Product
	names map[string]struct{}
}

func (s *inventory) Reload(ctx context.Context) error {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	items := make(map[int64]*model.Product, len(rows))
	names := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		p, err := model.NewProduct(row.ID, row.Name, row.Quantity, row.Price)
		if err != nil {
			return err
		}
		items[p.ID()] = p
		names[p.Name()] = struct{}{}
	}

	s.items = items
	s.names = names
	return nil
}

func (s *inventory) Add(ctx context.Context, p *model.Product) error {
	if _, ok := s.items[p.ID()]; ok {
		return model.ErrDuplicateID
	}
	if _, ok := s.names[p.Name()]; ok {
		return model.ErrDuplicateName
	}

	if err := s.repo.Insert(ctx, p.Snapshot()); err != nil {
		return err
	}

	s.items[p.ID()] = p
	s.names[p.Name()] = struct{}{}

	_ = s.dispatcher.Dispatch(model.ProductAdded{ProductID: p.ID(), Name: p.Name()})
	return nil
}

func (s *inventory) Remove(ctx context.Context, id int64) error {
	p, ok := s.items[id]
	if !ok {
		return model.ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	delete(s.items, id)
	delete(s.names, p.Name())

	_ = s.dispatcher.Dispatch(model.ProductRemoved{ProductID: id, Name: p.Name()})
	return nil
}

func (s *inventory) UpdateQuantity(ctx context.Context, id int64, newQuantity int) error {
	p, ok := s.items[id]
	if !ok {
		return model.ErrProductNotFound
	}
	if err := model.ValidateQuantity(newQuantity); err != nil {
		return err
	}

	if err := s.repo.UpdateQuantity(ctx, id, newQuantity); err != nil {
		return err
	}

	old := p.Quantity()
	if err := p.SetQuantity(newQuantity); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductQuantityChanged{
		ProductID:   id,
		OldQuantity: old,
		NewQuantity: newQuantity,
	})
	return nil
}

func (s *inventory) UpdatePrice(ctx context.Context, id int64, newPrice float64) error {
	p, ok := s.items[id]
	if !ok {
		return model.ErrProductNotFound
	}
	if err := model.ValidatePrice(newPrice); err != nil {
		return err
	}

	if err := s.repo.UpdatePrice(ctx, id, newPrice); err != nil {
		return err
	}

	old := p.Price()
	if err := p.SetPrice(newPrice); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductPriceChanged{
		ProductID: id,
		OldPrice:  old,
		NewPrice:  newPrice,
	})
	return nil
}

// SearchByName matches the given text against product names as a
// case-insensitive substring, purely in memory. Empty input yields an empty
// result. Results come back in ascending id order.
func (s *inventory) SearchByName(text string) []model.Snapshot {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	needle := strings.ToLower(text)
	out := make([]model.Snapshot, 0)
	for _, p := range s.items {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			out = append(out, p.Snapshot())
		}
	}
	sortByID(out)
	return out
}

// ListAll returns a snapshot of every product in ascending id order.
func (s *inventory) ListAll() []model.Snapshot {
	out := make([]model.Snapshot, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.Snapshot())
	}
	sortByID(out)
	return out
}

func sortByID(snaps []model.Snapshot) {
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].ID < snaps[j].ID })
}

// FormatProduct renders one catalog line for the console layer.
func FormatProduct(s model.Snapshot) string {
	return fmt.Sprintf("[%d] %s — Cant: %d — Precio: $%.2f", s.ID, s.Name, s.Quantity, s.Price)
}
