package sheets

// SheetProperties identifies one tab of a spreadsheet
type SheetProperties struct {
	// SheetID is the numeric ID of the tab (the gid in the spreadsheet URL)
	SheetID int64 `json:"sheetId"`

	// Title is the tab name shown in the UI
	Title string `json:"title"`
}

// ValueRange holds the values of one A1 range
type ValueRange struct {
	// Range is the A1 range as reported by the service (e.g. "Sheet1!A1:C10")
	Range string `json:"range"`

	// Values are the rows of the range. Trailing empty rows and cells are omitted.
	Values [][]interface{} `json:"values"`
}

// IsEmpty reports whether the range holds no cells
func (v ValueRange) IsEmpty() bool {
	for _, row := range v.Values {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// UpdateResult summarizes a values update
type UpdateResult struct {
	UpdatedRange string `json:"updatedRange"`
	UpdatedCells int64  `json:"updatedCells"`
}
