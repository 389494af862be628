package utilization

type Response struct {
	PersonID               string  `json:"person_id"`
	PersonName             *string `json:"person_name,omitempty"`
	Month                  string  `json:"month"`
	WorkingHours           float64 `json:"working_hours"`
	WorkedHours            float64 `json:"worked_hours"`
	BillableHours          float64 `json:"billable_hours"`
	UtilizationPct         float64 `json:"utilization_pct"`
	BillableUtilizationPct float64 `json:"billable_utilization_pct"`
	LeaveDays              float64 `json:"leave_days"`
	HolidayDays            int     `json:"holiday_days"`
}

func ToResponse(u MonthlyUtilization) Response {
	return Response{
		PersonID:               u.PersonID,
		PersonName:             u.PersonName,
		Month:                  u.Month.Format("2006-01"),
		WorkingHours:           u.WorkingHours,
		WorkedHours:            u.WorkedHours,
		BillableHours:          u.BillableHours,
		UtilizationPct:         u.UtilizationPct,
		BillableUtilizationPct: u.BillableUtilizationPct,
		LeaveDays:              u.LeaveDays,
		HolidayDays:            u.HolidayDays,
	}
}

// BatchResult summarizes a batch recalculation run. Per-person failures are
// recorded and do not abort the batch.
type BatchResult struct {
	Month     string   `json:"month"`
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}
