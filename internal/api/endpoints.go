package api

import (
	"context"
	"fmt"
	"io"

	"freeflow-cli/internal/model"
)

// Typed wrappers for the full REST surface. One method per endpoint; the
// response shapes live in internal/model so every call site gets validated
// types once, at this boundary.

type LoginResult struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Name    string `json:"name,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.post(ctx, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*LoginResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out LoginResult
	if err := c.post(ctx, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Clients(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	if err := c.get(ctx, "/api/clients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClientByID(ctx context.Context, id string) (*model.Client, error) {
	var out model.Client
	if err := c.get(ctx, "/api/clients/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	if err := c.get(ctx, "/api/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProjectByID(ctx context.Context, id string) (*model.Project, error) {
	var out model.Project
	if err := c.get(ctx, "/api/projects/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.del(ctx, "/api/projects/"+id)
}

func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.get(ctx, "/api/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) WorkQueue(ctx context.Context) ([]model.WorkItem, error) {
	var out []model.WorkItem
	if err := c.get(ctx, "/api/dashboard/work-queue", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AgentActivity(ctx context.Context, limit int) ([]model.AgentEvent, error) {
	var out []model.AgentEvent
	if err := c.get(ctx, fmt.Sprintf("/api/dashboard/agent-activity?limit=%d", limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseEmail runs the AI extraction over a raw inquiry. The draft's status
// field decides the workflow branch; this client never reinterprets it.
func (c *Client) ParseEmail(ctx context.Context, rawText string) (*model.IntakeDraft, error) {
	body := map[string]string{"raw_text": rawText}
	var out model.IntakeDraft
	if err := c.post(ctx, "/api/intake/parse-email", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type IntakeCreateResult struct {
	Message   string `json:"message"`
	ProjectID string `json:"project_id"`
	ClientID  string `json:"client_id"`
}

// CreateManualIntake forwards the (possibly user-edited) draft verbatim.
func (c *Client) CreateManualIntake(ctx context.Context, draft model.IntakeDraft) (*IntakeCreateResult, error) {
	var out IntakeCreateResult
	if err := c.post(ctx, "/api/intake/create-manual", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateContract(ctx context.Context, projectID, templateID string) (*model.Contract, error) {
	body := map[string]string{"project_id": projectID, "template_id": templateID}
	var out model.Contract
	if err := c.post(ctx, "/api/contracts/generate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractForProject returns the project's contract, or a 404 *Error when
// none exists yet (callers fetching optimistically check IsNotFound).
func (c *Client) ContractForProject(ctx context.Context, projectID string) (*model.Contract, error) {
	var out model.Contract
	if err := c.get(ctx, "/api/contracts/status/"+projectID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SendContractResult struct {
	Message    string `json:"message"`
	ContractID string `json:"contract_id"`
}

func (c *Client) SendContract(ctx context.Context, contractID string) (*SendContractResult, error) {
	var out SendContractResult
	if err := c.post(ctx, "/api/contracts/send?contract_id="+contractID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInvoice(ctx context.Context, projectID string, amount float64, mode string) (*model.Invoice, error) {
	body := map[string]any{"project_id": projectID, "amount": amount, "mode": mode}
	var out model.Invoice
	if err := c.post(ctx, "/api/invoices/create", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InvoiceByID(ctx context.Context, id string) (*model.Invoice, error) {
	var out model.Invoice
	if err := c.get(ctx, "/api/invoices/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type RemindInvoiceResult struct {
	Message   string `json:"message"`
	InvoiceID string `json:"invoice_id"`
}

func (c *Client) RemindInvoice(ctx context.Context, id string) (*RemindInvoiceResult, error) {
	var out RemindInvoiceResult
	if err := c.post(ctx, "/api/invoices/remind/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadContractPDF streams the contract PDF into w, the terminal
// equivalent of the browser opening the download in a new tab.
func (c *Client) DownloadContractPDF(ctx context.Context, contractID string, w io.Writer) error {
	return c.download(ctx, "/api/contracts/"+contractID+"/pdf", w)
}

func (c *Client) DownloadInvoicePDF(ctx context.Context, invoiceID string, w io.Writer) error {
	return c.download(ctx, "/api/invoices/"+invoiceID+"/pdf", w)
}
