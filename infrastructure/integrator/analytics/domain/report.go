package analyticsdomain

// RunReportRequest é o corpo da chamada runReport da API de dados do GA4.
type RunReportRequest struct {
	DateRanges    []DateRange `json:"dateRanges"`
	Dimensions    []Dimension `json:"dimensions"`
	Metrics       []Metric    `json:"metrics"`
	KeepEmptyRows bool        `json:"keepEmptyRows"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Dimension struct {
	Name string `json:"name"`
}

type Metric struct {
	Name string `json:"name"`
}

// RunReportResponse é a resposta bruta do runReport. Cada linha traz os
// valores das dimensões e métricas na ordem em que foram pedidos.
type RunReportResponse struct {
	Rows     []ReportRow `json:"rows"`
	RowCount int         `json:"rowCount"`
}

type ReportRow struct {
	DimensionValues []ReportValue `json:"dimensionValues"`
	MetricValues    []ReportValue `json:"metricValues"`
}

type ReportValue struct {
	Value string `json:"value"`
}
