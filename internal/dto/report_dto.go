package dto

import (
	"counselling-portal-be/pkg/report"
)

type GenerateReportRequest struct {
	ReportType    string   `json:"reportType" validate:"required,oneof=sessions appointments"`
	DateRange     string   `json:"dateRange" validate:"omitempty,oneof=today week month custom"`
	StartDate     string   `json:"startDate" validate:"required_if=DateRange custom"`
	EndDate       string   `json:"endDate" validate:"required_if=DateRange custom"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	ResidenceType string   `json:"residenceType" validate:"omitempty,oneof=Hosteller 'Day Scholar'"`
	Department    string   `json:"department"`
	CounsellorId  string   `json:"counsellorId" validate:"omitempty,uuid"`
	GroupBy       string   `json:"groupBy" validate:"omitempty,oneof=counsellor category date department"`
	Fields        []string `json:"fields"`
}

func (r *GenerateReportRequest) ToSpec() report.Spec {
	return report.Spec{
		ReportType:    r.ReportType,
		DateRange:     r.DateRange,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Category:      r.Category,
		Status:        r.Status,
		ResidenceType: r.ResidenceType,
		Department:    r.Department,
		CounsellorId:  r.CounsellorId,
		GroupBy:       r.GroupBy,
		Fields:        r.Fields,
	}
}

// GenerateReportResponse.Data is a []*report.Record, or a
// map[string][]*report.Record keyed by group when grouping was requested.
type GenerateReportResponse struct {
	Data    interface{}    `json:"data"`
	Summary report.Summary `json:"summary"`
}

func NewGenerateReportResponse(res *report.Result) *GenerateReportResponse {
	if res.Grouped() {
		return &GenerateReportResponse{Data: res.Groups, Summary: res.Summary}
	}
	data := res.Records
	if data == nil {
		data = []*report.Record{}
	}
	return &GenerateReportResponse{Data: data, Summary: res.Summary}
}

type ExportReportRequest struct {
	Data       []*report.Record `json:"data" validate:"required"`
	ReportType string           `json:"reportType"`
	Fields     []string         `json:"fields" validate:"required,min=1"`
	Title      string           `json:"title"`
}
