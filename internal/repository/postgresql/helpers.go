package postgresql

// orderClause builds an ORDER BY from a per-entity whitelist. Unknown sort
// keys fall back to the whitelist's createdAt column, unknown orders to DESC.
// idColumn is a tiebreaker so pagination windows stay stable across equal
// sort values.
func orderClause(columns map[string]string, sort, order, idColumn string) string {
	column, ok := columns[sort]
	if !ok {
		column = columns["createdAt"]
	}
	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}
	return " ORDER BY " + column + " " + direction + ", " + idColumn + " " + direction
}
