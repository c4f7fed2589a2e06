package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

func TestResolveCaseAndWhitespace(t *testing.T) {
	for _, header := range []string{" Date ", "DATE", "date", "\tDate"} {
		roles := Resolve(rawTable([]string{"Qty", header}, []interface{}{int64(1), "2025-01-01"}))
		col, ok := roles.Column(models.RoleDate)
		require.True(t, ok, "%q", header)
		assert.Equal(t, header, col)
	}
}

func TestResolveAllRoles(t *testing.T) {
	columns := []string{
		"DATE", "Product Description (Long)", "Sub-Department", "QTY",
		" Net Sales ", "Cost of Sale", "Brand", "Colour",
	}
	roles := Resolve(rawTable(columns))

	assert.Equal(t, models.RoleMap{
		models.RoleDate:       "DATE",
		models.RoleProduct:    "Product Description (Long)",
		models.RoleDepartment: "Sub-Department",
		models.RoleQuantity:   "QTY",
		models.RoleRevenue:    " Net Sales ",
		models.RoleCost:       "Cost of Sale",
		models.RoleBrand:      "Brand",
		models.RoleColor:      "Colour",
	}, roles)
}

func TestResolveAliasOrder(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		role     models.Role
		expected string
	}{
		{"net sales preferred", []string{"Nt. Sl. Ls Vt", "Net Sales"}, models.RoleRevenue, "Net Sales"},
		{"legacy revenue header", []string{"Total", "Nt. Sl. Ls Vt"}, models.RoleRevenue, "Nt. Sl. Ls Vt"},
		{"total revenue fallback", []string{"Total Revenue"}, models.RoleRevenue, "Total Revenue"},
		{"qty preferred", []string{"Quantity Sold", "Qty"}, models.RoleQuantity, "Qty"},
		{"product name fallback", []string{"Product Name"}, models.RoleProduct, "Product Name"},
		{"first duplicate wins", []string{"Department", "Department.1"}, models.RoleDepartment, "Department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := Resolve(rawTable(tt.columns))
			assert.Equal(t, tt.expected, roles[tt.role])
		})
	}
}

func TestResolveExactMatchOnly(t *testing.T) {
	roles := Resolve(rawTable([]string{"Qty Returned", "Net Sales Tax", "Cost of Sales"}))
	assert.Empty(t, roles)
}

func TestResolveProbesDateColumn(t *testing.T) {
	table := rawTable(
		[]string{"Ref", "Qty", "Sold On", "Shipped"},
		[]interface{}{"A-1", int64(45758), "11 April 2025", "2025-04-12"},
	)

	roles := Resolve(table)
	assert.Equal(t, "Sold On", roles[models.RoleDate], "numbers are not probed; first parseable text column wins")
	assert.Equal(t, "Qty", roles[models.RoleQuantity])
}

func TestResolveProbeSkipsClaimedColumns(t *testing.T) {
	table := rawTable(
		[]string{"Department", "Net Sales", "When"},
		[]interface{}{"2025-04-10", "2025-04-11", "12/04/2025"},
	)

	roles := Resolve(table)
	assert.Equal(t, "When", roles[models.RoleDate])
	assert.Equal(t, "Department", roles[models.RoleDepartment])
	assert.Equal(t, "Net Sales", roles[models.RoleRevenue])
}

func TestResolveNoDate(t *testing.T) {
	roles := Resolve(rawTable([]string{"Item", "Qty"}, []interface{}{"Matte White", int64(3)}))
	_, ok := roles.Column(models.RoleDate)
	assert.False(t, ok)

	roles = Resolve(rawTable([]string{"Item"}))
	assert.Empty(t, roles)
}

func TestRequireBatchesMissingRoles(t *testing.T) {
	roles := models.RoleMap{models.RoleQuantity: "Qty"}

	err := Require(roles, []string{"Qty", "Notes"}, "metrics", MetricRoles...)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []models.Role{models.RoleRevenue, models.RoleCost}, missing.Missing)
	assert.Equal(t, []string{"Qty", "Notes"}, missing.Available)
	assert.Contains(t, err.Error(), "revenue, cost")
	assert.Contains(t, err.Error(), "Qty, Notes")

	assert.NoError(t, Require(roles, nil, "metrics", models.RoleQuantity))
}
