package model

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func testClients() []Client {
	return []Client{
		{ID: "c1", Name: "Jane Doe", Email: "jane@acmecorp.com", Company: strPtr("Acme Corporation")},
		{ID: "c2", Name: "Bob Smith", Email: "bob@globex.io"},
		{ID: "c3", Name: "Ada Lovelace", Email: "ada@initech.com", Company: strPtr("Initech")},
	}
}

func testProjects() []Project {
	return []Project{
		{ID: "p1", ClientID: "c1", Title: "Landing page redesign", Description: "Modern, mobile-friendly", Status: ProjectStatusIntake},
		{ID: "p2", ClientID: "c2", Title: "API integration", Description: "Connect billing system", Status: ProjectStatusContract},
		{ID: "p3", ClientID: "c1", Title: "Logo refresh", Description: "New brand identity", Status: ProjectStatusDone},
	}
}

func TestFilterClients_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	clients := testClients()

	tests := []struct {
		name    string
		q       string
		wantIDs []string
	}{
		{name: "empty keeps all", q: "", wantIDs: []string{"c1", "c2", "c3"}},
		{name: "blank keeps all", q: "   ", wantIDs: []string{"c1", "c2", "c3"}},
		{name: "name match", q: "jane", wantIDs: []string{"c1"}},
		{name: "email match", q: "GLOBEX", wantIDs: []string{"c2"}},
		{name: "company match", q: "initech", wantIDs: []string{"c3"}},
		{name: "shared substring", q: "com", wantIDs: []string{"c1", "c3"}},
		{name: "no match", q: "zzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterClients(clients, tt.q)
			gotIDs := make([]string, 0, len(got))
			for _, c := range got {
				gotIDs = append(gotIDs, c.ID)
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("FilterClients(%q) = %v; want %v", tt.q, gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("FilterClients(%q) = %v; want %v", tt.q, gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestFilterProjects_SearchAndStatus(t *testing.T) {
	t.Parallel()

	projects := testProjects()
	byID := ClientsByID(testClients())

	tests := []struct {
		name    string
		q       string
		status  string
		wantIDs []string
	}{
		{name: "no filters", q: "", status: "all", wantIDs: []string{"p1", "p2", "p3"}},
		{name: "title match", q: "landing", status: "all", wantIDs: []string{"p1"}},
		{name: "description match", q: "billing system", status: "all", wantIDs: []string{"p2"}},
		{name: "client name match", q: "jane", status: "all", wantIDs: []string{"p1", "p3"}},
		{name: "status only", q: "", status: "Contract", wantIDs: []string{"p2"}},
		{name: "search and status", q: "jane", status: "Done", wantIDs: []string{"p3"}},
		{name: "status excludes", q: "landing", status: "Done", wantIDs: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterProjects(projects, byID, tt.q, tt.status)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("FilterProjects(%q, %q) = %v; want %v", tt.q, tt.status, gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("FilterProjects(%q, %q) = %v; want %v", tt.q, tt.status, gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestClientAggregates(t *testing.T) {
	t.Parallel()

	budget1 := 2500.0
	budget2 := 1000.0
	projects := []Project{
		{ID: "p1", ClientID: "c1", Status: ProjectStatusIntake, Budget: &budget1},
		{ID: "p2", ClientID: "c1", Status: ProjectStatusDone, Budget: &budget2},
		{ID: "p3", ClientID: "c1", Status: ProjectStatusBilling},
		{ID: "p4", ClientID: "c2", Status: ProjectStatusIntake},
	}

	if got := ActiveProjectCount(projects, "c1"); got != 2 {
		t.Fatalf("ActiveProjectCount = %d; want 2", got)
	}
	if got := TotalBudget(projects, "c1"); got != 3500.0 {
		t.Fatalf("TotalBudget = %v; want 3500", got)
	}
	if got := len(ClientProjects(projects, "c2")); got != 1 {
		t.Fatalf("ClientProjects(c2) = %d entries; want 1", got)
	}
}
