package entity

// PrintJobItem is one receipt line in the bill artifact consumed by the
// print helper.
type PrintJobItem struct {
	ItemName  string  `json:"ItemName"`
	Quantity  int     `json:"QTY"`
	UnitPrice float64 `json:"UnitPrice"`
	Discount  float64 `json:"Discount"`
}

// PrintJob is the immutable bill snapshot written to the JSON artifact once
// per print attempt. Field names and the date format are a fixed contract
// with the helper executable and must not change.
type PrintJob struct {
	BillID        string         `json:"BillID"`
	Date          string         `json:"date"`
	CashierID     string         `json:"CashierID"`
	CashierName   string         `json:"CashierName"`
	CustomerName  string         `json:"CustomerName"`
	CustomerFName string         `json:"CustomerFName"`
	CustomerLName string         `json:"CustomerLName"`
	Subtotal      float64        `json:"Subtotal"`
	Total         float64        `json:"Total"`
	Discount      float64        `json:"Discount"`
	CashAmount    float64        `json:"CashAmount"`
	CardAmount    float64        `json:"CardAmount"`
	Balance       float64        `json:"Balance"`
	Details       []PrintJobItem `json:"Details"`
}

// PrintResult is the structured outcome of a print or save attempt.
// Success tracks whether the bill record was durably written; Printed is the
// independent secondary signal that the rendered artifact exists.
type PrintResult struct {
	Success      bool      `json:"success"`
	Printed      bool      `json:"printed"`
	Bill         *PrintJob `json:"bill"`
	JSONPath     string    `json:"json_path"`
	PDFPath      string    `json:"pdf_path,omitempty"`
	Stdout       string    `json:"stdout,omitempty"`
	Stderr       string    `json:"stderr,omitempty"`
	Message      string    `json:"message,omitempty"`
	WriteSuccess bool      `json:"write_success,omitempty"`
	WrittenAt    string    `json:"written_at,omitempty"`
}
