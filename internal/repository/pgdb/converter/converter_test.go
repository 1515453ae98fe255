package converter_test

import (
	"testing"
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/pgdb/converter"
	"github.com/stretchr/testify/require"
)

func TestSupplierConverter_ShippingDays(t *testing.T) {
	conv := converter.SupplierConverter{}
	days := 12

	model := conv.ToModel(&domain.Supplier{ID: "s1", Rating: 4, ShippingDays: &days, CreatedAt: time.Unix(0, 0)}, 3)
	require.Equal(t, 3, model.Position)
	require.Equal(t, int16(4), model.Rating)
	require.Equal(t, int32(12), *model.ShippingDays)

	model.ShippingDays = nil
	require.Nil(t, conv.ToEntity(model).ShippingDays)
}
