package domain

// DefaultPage is the page number the HTTP adapter assumes when the query
// parameter is absent.
const DefaultPage = 0

// DefaultPageSize is the page size the HTTP adapter assumes when the query
// parameter is absent.
const DefaultPageSize = 10
