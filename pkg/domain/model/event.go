package model

type ProductAdded struct {
	ProductID int64
	Name      string
}

func (e ProductAdded) Type() string { return "ProductAdded" }

type ProductRemoved struct {
	ProductID int64
	Name      string
}

func (e ProductRemoved) Type() string { return "ProductRemoved" }

type ProductQuantityChanged struct {
	ProductID   int64
	OldQuantity int
	NewQuantity int
}

func (e ProductQuantityChanged) Type() string { return "ProductQuantityChanged" }

type ProductPriceChanged struct {
	ProductID int64
	OldPrice  float64
	NewPrice  float64
}

func (e ProductPriceChanged) Type() string { return "ProductPriceChanged" }
