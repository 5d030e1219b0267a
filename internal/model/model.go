package model

import "time"

type ProjectStatus string

const (
	ProjectStatusIntake   ProjectStatus = "Intake"
	ProjectStatusContract ProjectStatus = "Contract"
	ProjectStatusBilling  ProjectStatus = "Billing"
	ProjectStatusDone     ProjectStatus = "Done"
)

// ProjectStatuses is the display order of the lifecycle badges.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusIntake,
	ProjectStatusContract,
	ProjectStatusBilling,
	ProjectStatusDone,
}

type ContractStatus string

const (
	ContractStatusDraft             ContractStatus = "Draft"
	ContractStatusSent              ContractStatus = "Sent"
	ContractStatusAwaitingSignature ContractStatus = "AwaitingSignature"
	ContractStatusSigned            ContractStatus = "Signed"
	ContractStatusBlocked           ContractStatus = "Blocked"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "Draft"
	InvoiceStatusSent    InvoiceStatus = "Sent"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
	InvoiceStatusFailed  InvoiceStatus = "Failed"
)

type IntakeStatus string

const (
	IntakeComplete      IntakeStatus = "intake_complete"
	IntakeNeedsReview   IntakeStatus = "needs_review"
	IntakeMalicious     IntakeStatus = "malicious_email"
	IntakeUnableToParse IntakeStatus = "unable_to_parse"
)

// Session is the locally persisted identity. LoginAt drives the 24h expiry;
// everything else is display data echoed back from the auth endpoints.
type Session struct {
	UserID  string    `json:"userId"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	LoginAt time.Time `json:"loginAt"`
}

// The entity records below mirror the backend payloads verbatim (snake_case
// JSON, string uuids, RFC3339 timestamps). They are transient, non-authoritative
// copies held for the duration of a view; the backend owns all transitions.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Budget      *float64      `json:"budget,omitempty"`
	Timeline    *string       `json:"timeline,omitempty"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

type Contract struct {
	ID                string         `json:"id"`
	ProjectID         string         `json:"project_id"`
	PDFURL            *string        `json:"pdf_url,omitempty"`
	Variables         map[string]any `json:"variables"`
	SignatureProvider string         `json:"signature_provider,omitempty"`
	SignatureID       *string        `json:"signature_id,omitempty"`
	Status            ContractStatus `json:"status"`
	SignedAt          *time.Time     `json:"signed_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

type Invoice struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	Amount         float64         `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	Status         InvoiceStatus   `json:"status"`
	StripeIntentID *string         `json:"stripe_intent_id,omitempty"`
	PDFURL         *string         `json:"pdf_url,omitempty"`
	Details        *InvoiceDetails `json:"details,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type InvoiceDetails struct {
	LineItems []LineItem `json:"line_items"`
	Total     float64    `json:"total"`
	Notes     string     `json:"notes,omitempty"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// IntakeDraft is the extraction result for one pasted inquiry. It is never
// persisted; edits mutate the local copy and submit forwards it unchanged.
type IntakeDraft struct {
	Client          IntakeClient  `json:"client"`
	Project         IntakeProject `json:"project"`
	Confidence      Confidence    `json:"confidence"`
	Status          IntakeStatus  `json:"status"`
	SecurityMessage string        `json:"security_message,omitempty"`
}

type IntakeClient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

type IntakeProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`
}

// Confidence values are backend-supplied probabilities in [0,1]; the client
// only maps them to colors, it never recomputes them.
type Confidence struct {
	Budget   float64 `json:"budget"`
	Timeline float64 `json:"timeline"`
}

type DashboardStats struct {
	Projects  ProjectCounts  `json:"projects"`
	Contracts ContractCounts `json:"contracts"`
	Invoices  InvoiceCounts  `json:"invoices"`
}

type ProjectCounts struct {
	Intake   int `json:"intake"`
	Contract int `json:"contract"`
	Billing  int `json:"billing"`
}

type ContractCounts struct {
	Pending int `json:"pending"`
	Signed  int `json:"signed"`
}

type InvoiceCounts struct {
	Sent    int `json:"sent"`
	Paid    int `json:"paid"`
	Overdue int `json:"overdue"`
}

type WorkItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type AgentEvent struct {
	ID         string         `json:"id"`
	TraceID    string         `json:"trace_id"`
	Kind       string         `json:"kind"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
