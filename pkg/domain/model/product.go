package model

import (
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrValidation      = errors.New("invalid product field")
	ErrDuplicateID     = errors.New("product id is already in use")
	ErrDuplicateName   = errors.New("product name is already in use")
	ErrProductNotFound = errors.New("product not found")
	ErrIntegrity       = errors.New("store integrity violation")
)

// Snapshot is an immutable copy of a product's state, safe to hand to
// callers without exposing the entity to unvalidated mutation.
type Snapshot struct {
	ID       int64
	Name     string
	Quantity int
	Price    float64
}

// Product is the catalog entry aggregate. All fields are private and every
// write path runs the field's validation, so an instance can never hold an
// invalid state.
type Product struct {
	id       int64
	name     string
	quantity int
	price    float64
}

// NewProduct validates all four fields and builds the entity. The id is the
// product's immutable identity; the name is stored trimmed.
func NewProduct(id int64, name string, quantity int, price float64) (*Product, error) {
	if id <= 0 {
		return nil, errors.Wrap(ErrValidation, "id must be a positive integer")
	}

	p := &Product{id: id}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) ID() int64      { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Quantity() int  { return p.quantity }
func (p *Product) Price() float64 { return p.price }

// Rename replaces the product name, rejecting blank values. The stored name
// is always trimmed.
func (p *Product) Rename(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	p.name = strings.TrimSpace(name)
	return nil
}

// SetQuantity replaces the stock quantity, rejecting negative values.
func (p *Product) SetQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	p.quantity = quantity
	return nil
}

// SetPrice replaces the unit price, rejecting negative or non-finite values.
func (p *Product) SetPrice(price float64) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) Snapshot() Snapshot {
	return Snapshot{ID: p.id, Name: p.name, Quantity: p.quantity, Price: p.price}
}

// ToMap returns a plain key-value projection for display or serialization.
func (p *Product) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":       p.id,
		"name":     p.name,
		"quantity": p.quantity,
		"price":    p.price,
	}
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrap(ErrValidation, "name must not be blank")
	}
	return nil
}

func ValidateQuantity(quantity int) error {
	if quantity < 0 {
		return errors.Wrap(ErrValidation, "quantity must be a non-negative integer")
	}
	return nil
}

func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return errors.Wrap(ErrValidation, "price must be a finite number")
	}
	if price < 0 {
		return errors.Wrap(ErrValidation, "price must be non-negative")
	}
	return nil
}

// ProductRepository is the persistence port for the catalog. ListAll returns
// rows in ascending id order. Implementations translate store constraint
// violations into ErrIntegrity.
type ProductRepository interface {
	Insert(ctx context.Context, p Snapshot) error
	Delete(ctx context.Context, id int64) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	UpdatePrice(ctx context.Context, id int64, price float64) error
	ListAll(ctx context.Context) ([]Snapshot, error)
}
