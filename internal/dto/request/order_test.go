package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemRequest_AcceptsNumericStrings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "numbers", body: `{"dishId":3,"unit_rate":12.5,"quantity":2,"price":25}`},
		{name: "strings", body: `{"dishId":"3","unit_rate":"12.5","quantity":"2","price":"25"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var item OrderItemRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &item))

			assert.Equal(t, FlexInt(3), item.DishID)
			require.NotNil(t, item.UnitRate)
			require.NotNil(t, item.Price)
			assert.Equal(t, FlexFloat(12.5), *item.UnitRate)
			assert.Equal(t, FlexInt(2), item.Quantity)
			assert.Equal(t, FlexFloat(25), *item.Price)
		})
	}
}

func TestOrderItemRequest_RejectsNonNumeric(t *testing.T) {
	var item OrderItemRequest
	err := json.Unmarshal([]byte(`{"dishId":3,"quantity":"two"}`), &item)

	assert.Error(t, err)
}

func TestOrderItemRequest_MissingMoneyStaysNil(t *testing.T) {
	var item OrderItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dishId":3,"quantity":2,"price":0}`), &item))

	assert.Nil(t, item.UnitRate)
	require.NotNil(t, item.Price)
	assert.Equal(t, FlexFloat(0), *item.Price)
}

func TestPaginatedRequest(t *testing.T) {
	assert.Equal(t, 20, PaginatedRequest{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 10, PaginatedRequest{Page: 1, PerPage: 0}.Limit())
	assert.Equal(t, 100, PaginatedRequest{Page: 1, PerPage: 500}.Limit())
	assert.Equal(t, 0, PaginatedRequest{Page: 0, PerPage: 10}.Offset())
}
