package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want OrderStatus
		ok   bool
	}{
		{"IN_TRANSIT", OrderStatusInTransit, true},
		{" in_ub ", OrderStatusInUB, true},
		{"customs_hold", OrderStatusCustomsHold, true},
		{"SHIPPED", "SHIPPED", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrder_SortHistory(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	o := Order{StatusHistory: []StatusHistory{
		{ID: "c", Status: OrderStatusInUB, Timestamp: t0.Add(2 * time.Hour)},
		{ID: "a", Status: OrderStatusInWarehouse, Timestamp: t0},
		{ID: "b", Status: OrderStatusInTransit, Timestamp: t0.Add(time.Hour)},
	}}

	o.SortHistory()

	ids := []string{o.StatusHistory[0].ID, o.StatusHistory[1].ID, o.StatusHistory[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestOrder_LatestStatusUsesTimestamp(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	o := Order{StatusHistory: []StatusHistory{
		{Status: OrderStatusInTransit, Timestamp: t0.Add(time.Hour)},
		// backfilled entry inserted later with an older timestamp
		{Status: OrderStatusInWarehouse, Timestamp: t0},
	}}

	latest, ok := o.LatestStatus()
	require.True(t, ok)
	assert.Equal(t, OrderStatusInTransit, latest)
	assert.False(t, o.StatusChanged(OrderStatusInTransit))
	assert.True(t, o.StatusChanged(OrderStatusInUB))
}

func TestOrder_StatusChangedOnEmptyHistory(t *testing.T) {
	o := Order{Status: OrderStatusInWarehouse}
	_, ok := o.LatestStatus()
	assert.False(t, ok)
	assert.True(t, o.StatusChanged(OrderStatusInWarehouse))
}

func TestOrder_NextHistoryTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("EmptyHistory", func(t *testing.T) {
		o := Order{}
		assert.Equal(t, now, o.NextHistoryTime(now))
	})

	t.Run("LatestInThePast", func(t *testing.T) {
		o := Order{StatusHistory: []StatusHistory{{Timestamp: now.Add(-time.Hour)}}}
		assert.Equal(t, now, o.NextHistoryTime(now))
	})

	t.Run("LatestAheadOfClock", func(t *testing.T) {
		future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		o := Order{StatusHistory: []StatusHistory{{Timestamp: future}}}
		assert.Equal(t, future.Add(time.Millisecond), o.NextHistoryTime(now))
	})

	t.Run("SameInstant", func(t *testing.T) {
		o := Order{StatusHistory: []StatusHistory{{Timestamp: now}}}
		assert.True(t, o.NextHistoryTime(now).After(now))
	})
}

func TestPlanDetails(t *testing.T) {
	payload := &DetailsInput{TotalQuantity: 1}

	assert.Equal(t, DetailsUpsert, PlanDetails(true, payload, false))
	assert.Equal(t, DetailsUpsert, PlanDetails(true, payload, true))
	assert.Equal(t, DetailsKeep, PlanDetails(true, nil, true))
	assert.Equal(t, DetailsKeep, PlanDetails(true, nil, false))
	assert.Equal(t, DetailsDelete, PlanDetails(false, nil, true))
	assert.Equal(t, DetailsDelete, PlanDetails(false, payload, true))
	assert.Equal(t, DetailsKeep, PlanDetails(false, payload, false))
}

func TestDetailsInput_Validate(t *testing.T) {
	assert.NoError(t, DetailsInput{TotalQuantity: 3, PriceRMB: decimal.NewFromInt(10)}.Validate())
	assert.ErrorIs(t, DetailsInput{ShippedQuantity: -1}.Validate(), ErrNegativeQuantity)
	assert.ErrorIs(t, DetailsInput{PriceTonggur: decimal.NewFromInt(-5)}.Validate(), ErrNegativePrice)
}

func TestUpdateOrderInput_Apply(t *testing.T) {
	o := Order{OrderID: "ORD1", PackageID: "PKG1", IsDamaged: true, DamageDescription: "torn box"}
	notDamaged := false
	pkg := "PKG2"

	UpdateOrderInput{PackageID: &pkg, IsDamaged: &notDamaged}.Apply(&o)

	assert.Equal(t, "ORD1", o.OrderID)
	assert.Equal(t, "PKG2", o.PackageID)
	assert.False(t, o.IsDamaged)
	assert.Empty(t, o.DamageDescription)
}

func TestListFilter_Normalize(t *testing.T) {
	f := ListFilter{Page: 0, PageSize: 1000}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MaxPageSize, f.PageSize)
	assert.Equal(t, 0, f.Offset())

	f = ListFilter{Page: 3}
	f.Normalize()
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 40, f.Offset())
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "99****33", MaskPhone("99112233"))
	assert.Equal(t, "1234", MaskPhone("1234"))
	assert.Equal(t, "", MaskPhone(""))
}

func TestNewTrackingView_HidesStaffData(t *testing.T) {
	o := &Order{
		OrderID:     "ORD1",
		PhoneNumber: "99112233",
		Status:      OrderStatusInUB,
		StatusHistory: []StatusHistory{
			{ID: "h1", Status: OrderStatusInUB, EmployeeID: "emp-7"},
		},
		OrderDetails: &OrderDetails{PriceRMB: decimal.NewFromInt(100)},
	}

	data, err := json.Marshal(NewTrackingView(o))
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"phoneNumber":"99****33"`)
	assert.NotContains(t, s, "emp-7")
	assert.NotContains(t, s, "priceRMB")
}
