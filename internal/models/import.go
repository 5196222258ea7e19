package models

// ImportRow is one spreadsheet data row keyed by header column name.
// Number is the spreadsheet row number; data rows start at 2 because
// row 1 holds the header.
type ImportRow struct {
	Number int
	Fields map[string]string
}

// ImportRowError describes a row that could not be imported. Data carries
// the original row so the caller can fix and resubmit just the bad rows.
type ImportRowError struct {
	Row    int               `json:"row"`
	Reason string            `json:"reason"`
	Data   map[string]string `json:"data"`
}

// ImportReport summarizes one bulk upload. Row failures are collected here
// and never abort the batch.
type ImportReport struct {
	TotalRows         int              `json:"totalRows"`
	SuccessCount      int              `json:"successCount"`
	ErrorCount        int              `json:"errorCount"`
	SuccessfulRecords []any            `json:"successfulRecords"`
	Errors            []ImportRowError `json:"errors"`
}

// AddError records a failed row together with its original data.
func (r *ImportReport) AddError(row ImportRow, reason string) {
	r.Errors = append(r.Errors, ImportRowError{
		Row:    row.Number,
		Reason: reason,
		Data:   row.Fields,
	})
	r.ErrorCount++
}

// AddSuccess records a persisted record's public projection.
func (r *ImportReport) AddSuccess(record any) {
	r.SuccessfulRecords = append(r.SuccessfulRecords, record)
	r.SuccessCount++
}
