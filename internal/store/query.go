package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// validProductOrderBy maps allowed OrderBy values to their SQL column expressions.
var validProductOrderBy = map[string]string{
	"name":       "name ASC",
	"quantity":   "quantity ASC",
	"updated_at": "updated_at DESC",
}

const defaultProductOrderBy = "name ASC"

const baseProductsSelect = `SELECT id, name, category, type, quantity, image_url, updated_at
FROM inventory`

const countProductsSelect = "SELECT COUNT(*) FROM inventory"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a catalog query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", paramIdx))
		args = append(args, *q.Type)
		paramIdx++
	}

	if q.NameContains != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", paramIdx))
		args = append(args, "%"+*q.NameContains+"%")
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultProductOrderBy
	if q.OrderBy != "" {
		if col, ok := validProductOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}

// validTaxOrderBy maps allowed OrderBy values to their SQL column expressions.
var validTaxOrderBy = map[string]string{
	"date":       "date DESC",
	"amount":     "amount DESC",
	"created_at": "created_at DESC",
}

const defaultTaxOrderBy = "created_at DESC"

const baseTaxSelect = `SELECT id, order_id, date, amount, platform, created_at
FROM tax_entries`

const countTaxSelect = "SELECT COUNT(*) FROM tax_entries"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a tax query.
func (q *TaxQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Platform != nil {
		conditions = append(conditions, fmt.Sprintf("platform = $%d", paramIdx))
		args = append(args, *q.Platform)
		paramIdx++
	}

	if q.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", paramIdx))
		args = append(args, *q.DateFrom)
		paramIdx++
	}

	if q.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", paramIdx))
		args = append(args, *q.DateTo)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultTaxOrderBy
	if q.OrderBy != "" {
		if col, ok := validTaxOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseTaxSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countTaxSelect + whereClause

	return dataSQL, countSQL, args
}
