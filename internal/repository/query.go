package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching value anywhere, with the
// LIKE wildcards in value taken literally.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// searchTerms splits a search query on whitespace and commas. Every term must
// match at least one of the searched columns.
func searchTerms(search string) []string {
	return strings.Fields(strings.ReplaceAll(search, ",", " "))
}

// orderClause resolves a user supplied ordering ("field" or "-field") against
// the allowed columns. Unknown fields fall back to the default clause.
func orderClause(ordering string, allowed map[string]string, fallback string) string {
	direction := "ASC"
	field := strings.TrimSpace(ordering)
	if strings.HasPrefix(field, "-") {
		direction = "DESC"
		field = field[1:]
	}

	column, ok := allowed[field]
	if !ok {
		return fallback
	}
	return column + " " + direction
}
