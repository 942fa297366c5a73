package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLocationType_CanParent(t *testing.T) {
	levels := LocationTypes()

	for i, parent := range levels {
		for j, child := range levels {
			want := j == i+1
			assert.Equal(t, want, parent.CanParent(child), "%s -> %s", parent, child)
		}
	}

	assert.False(t, LocationType("REGION").CanParent(LocationDistrict))
	assert.False(t, LocationProvince.CanParent(LocationType("REGION")))
}

func TestLocationType_ParentAndChild(t *testing.T) {
	_, ok := LocationProvince.ParentType()
	assert.False(t, ok)

	parent, ok := LocationVillage.ParentType()
	assert.True(t, ok)
	assert.Equal(t, LocationCell, parent)

	child, ok := LocationSector.ChildType()
	assert.True(t, ok)
	assert.Equal(t, LocationCell, child)

	_, ok = LocationVillage.ChildType()
	assert.False(t, ok)
}

func TestLocationType_Level(t *testing.T) {
	assert.Equal(t, 0, LocationProvince.Level())
	assert.Equal(t, 4, LocationVillage.Level())
	assert.Equal(t, -1, LocationType("province").Level())
	assert.False(t, LocationType("").IsValid())
	assert.Equal(t, 5, MaxLocationDepth)
}

func TestSummarizeCart(t *testing.T) {
	book := &Book{Price: decimal.RequireFromString("10.00")}
	items := []*CartItem{
		{Quantity: 2, Book: book},
		{Quantity: 3},
	}

	summary := SummarizeCart(uuid.New(), items)

	assert.Equal(t, 5, summary.TotalItems)
	assert.True(t, decimal.NewFromInt(20).Equal(summary.TotalPrice), "got %s", summary.TotalPrice)
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
}
