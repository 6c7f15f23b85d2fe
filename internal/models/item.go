package models

type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GroupDeleteRequest struct {
	ItemIDs []int `json:"item_ids"`
}

// ImportRow is one data row extracted from an uploaded spreadsheet.
// Name and Description are already trimmed; RawID keeps the original cell
// text because non-numeric ids trigger name-based matching instead of
// failing the row.
type ImportRow struct {
	Line        int
	RawID       string
	Name        string
	Description string
}

// ImportSummary accumulates per-row outcomes across one import batch.
type ImportSummary struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
