package report

type CategoryStat struct {
	Category string `json:"_id"`
	Count    int64  `json:"count"`
}

type Overview struct {
	TotalSessions       int64 `json:"totalSessions"`
	TotalAppointments   int64 `json:"totalAppointments"`
	PendingAppointments int64 `json:"pendingAppointments"`
	CompletedSessions   int64 `json:"completedSessions"`
	FollowUpRequired    int64 `json:"followUpRequired"`
}

// Stats is the dashboard summary. CategoryBreakdown is ordered by count
// descending, then category ascending.
type Stats struct {
	Overview          Overview       `json:"overview"`
	CategoryBreakdown []CategoryStat `json:"categoryBreakdown"`
}
