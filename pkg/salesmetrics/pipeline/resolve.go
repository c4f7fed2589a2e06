package pipeline

import (
	"strings"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

type matchKind int

const (
	matchExact matchKind = iota
	matchSubstring
)

// ResolveRule maps header patterns to a role. Patterns are tried in order;
// for each pattern the first column in header order wins.
type ResolveRule struct {
	Role     models.Role
	Kind     matchKind
	Patterns []string
}

// DefaultRules is the ordered rule list used by Resolve.
var DefaultRules = []ResolveRule{
	{Role: models.RoleDate, Kind: matchExact, Patterns: []string{"date"}},
	{Role: models.RoleQuantity, Kind: matchExact, Patterns: []string{"qty", "quantity sold"}},
	{Role: models.RoleRevenue, Kind: matchExact, Patterns: []string{"net sales", "nt. sl. ls vt", "total revenue"}},
	{Role: models.RoleCost, Kind: matchExact, Patterns: []string{"cost of sale"}},
	{Role: models.RoleProduct, Kind: matchSubstring, Patterns: []string{"product description", "product name"}},
	{Role: models.RoleDepartment, Kind: matchSubstring, Patterns: []string{"department"}},
	{Role: models.RoleBrand, Kind: matchExact, Patterns: []string{"brand"}},
	{Role: models.RoleColor, Kind: matchExact, Patterns: []string{"color", "colour"}},
}

// NormalizeHeader lower-cases and trims a header for comparison.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// Resolve maps roles to the table's columns using DefaultRules. When no
// header names the date, the first column not matched by another rule whose
// first value parses as a date is used.
func Resolve(table *models.RawTable) models.RoleMap {
	roles := make(models.RoleMap)
	normalized := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		normalized[i] = NormalizeHeader(c)
	}

	for _, rule := range DefaultRules {
		if col, ok := matchRule(rule, table.Columns, normalized); ok {
			roles[rule.Role] = col
		}
	}

	if _, ok := roles[models.RoleDate]; !ok {
		if col, ok := probeDateColumn(table, roles); ok {
			roles[models.RoleDate] = col
		}
	}
	return roles
}

func matchRule(rule ResolveRule, columns, normalized []string) (string, bool) {
	for _, pattern := range rule.Patterns {
		for i, h := range normalized {
			switch rule.Kind {
			case matchExact:
				if h == pattern {
					return columns[i], true
				}
			case matchSubstring:
				if strings.Contains(h, pattern) {
					return columns[i], true
				}
			}
		}
	}
	return "", false
}

// probeDateColumn returns the first unclaimed column whose first row holds
// text that parses as a date. Unlike a plain scan of every column, columns
// already resolved to another role and non-text cells are skipped: a
// quantity or money column must never be taken as the date.
func probeDateColumn(table *models.RawTable, claimed models.RoleMap) (string, bool) {
	if len(table.Rows) == 0 {
		return "", false
	}
	taken := make(map[string]bool, len(claimed))
	for _, col := range claimed {
		taken[col] = true
	}
	first := table.Rows[0]
	for _, col := range table.Columns {
		if taken[col] {
			continue
		}
		s, ok := first[col].(string)
		if !ok {
			continue
		}
		if _, ok := ParseDate(s); ok {
			return col, true
		}
	}
	return "", false
}

// Require returns a MissingColumnError naming every role in required that
// roles does not resolve, or nil.
func Require(roles models.RoleMap, columns []string, operation string, required ...models.Role) error {
	missing := roles.Missing(required...)
	if len(missing) == 0 {
		return nil
	}
	return &MissingColumnError{
		Operation: operation,
		Missing:   missing,
		Available: columns,
	}
}
