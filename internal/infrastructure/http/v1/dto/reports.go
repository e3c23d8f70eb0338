package dto

// Report responses are served as the domain report structures; they are
// already shaped for the client and carry JSON tags. Only the period
// query parameters need a DTO.

// PeriodQuery binds the common report query parameters.
// Dates are inclusive, format 2006-01-02.
type PeriodQuery struct {
	FromDate string `form:"fromDate" binding:"required"`
	ToDate   string `form:"toDate" binding:"required"`
}
