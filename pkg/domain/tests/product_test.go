package tests

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/model"
)

func TestNewProduct(t *testing.T) {
	p, err := model.NewProduct(1, "  Martillo  ", 10, 5.5)

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID())
	assert.Equal(t, "Martillo", p.Name(), "name must be stored trimmed")
	assert.Equal(t, 10, p.Quantity())
	assert.Equal(t, 5.5, p.Price())
}

func TestNewProductValidation(t *testing.T) {
	cases := []struct {
		name     string
		id       int64
		prodName string
		quantity int
		price    float64
	}{
		{"zero id", 0, "Martillo", 1, 1},
		{"negative id", -3, "Martillo", 1, 1},
		{"empty name", 1, "", 1, 1},
		{"blank name", 1, "   ", 1, 1},
		{"negative quantity", 1, "Martillo", -1, 1},
		{"negative price", 1, "Martillo", 1, -0.01},
		{"NaN price", 1, "Martillo", 1, math.NaN()},
		{"infinite price", 1, "Martillo", 1, math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := model.NewProduct(tc.id, tc.prodName, tc.quantity, tc.price)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Nil(t, p)
		})
	}
}

func TestMutatorsRejectInvalidValues(t *testing.T) {
	p, err := model.NewProduct(1, "Martillo", 10, 5.5)
	require.NoError(t, err)

	assert.ErrorIs(t, p.SetQuantity(-1), model.ErrValidation)
	assert.Equal(t, 10, p.Quantity(), "failed mutation must leave the field unchanged")

	assert.ErrorIs(t, p.SetPrice(-2), model.ErrValidation)
	assert.ErrorIs(t, p.SetPrice(math.NaN()), model.ErrValidation)
	assert.Equal(t, 5.5, p.Price())

	assert.ErrorIs(t, p.Rename(" "), model.ErrValidation)
	assert.Equal(t, "Martillo", p.Name())
}

func TestMutatorsApplyValidValues(t *testing.T) {
	p, err := model.NewProduct(1, "Martillo", 10, 5.5)
	require.NoError(t, err)

	require.NoError(t, p.SetQuantity(0))
	assert.Equal(t, 0, p.Quantity())

	require.NoError(t, p.SetPrice(0))
	assert.Equal(t, 0.0, p.Price())

	require.NoError(t, p.Rename("Martillo grande "))
	assert.Equal(t, "Martillo grande", p.Name())
}

func TestSnapshotAndMap(t *testing.T) {
	p, err := model.NewProduct(7, "Tornillo", 3, 0.25)
	require.NoError(t, err)

	snap := p.Snapshot()
	assert.Equal(t, model.Snapshot{ID: 7, Name: "Tornillo", Quantity: 3, Price: 0.25}, snap)

	require.NoError(t, p.SetQuantity(99))
	assert.Equal(t, 3, snap.Quantity, "snapshot must not follow later mutations")

	assert.Equal(t, map[string]interface{}{
		"id":       int64(7),
		"name":     "Tornillo",
		"quantity": 99,
		"price":    0.25,
	}, p.ToMap())
}
