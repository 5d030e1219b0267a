package model

import "strings"

// Client-side list filtering. Both list views re-run these on every
// keystroke over the in-memory collections; there is no server-side search.

// FilterClients keeps clients whose name, email or company contains q
// (case-insensitive). An empty q keeps everything.
func FilterClients(clients []Client, q string) []Client {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return clients
	}
	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			(c.Company != nil && strings.Contains(strings.ToLower(*c.Company), q)) {
			out = append(out, c)
		}
	}
	return out
}

// FilterProjects keeps projects whose title, description or client name
// contains q (case-insensitive), then applies the status filter.
// status "all" (or empty) disables status filtering.
func FilterProjects(projects []Project, clientsByID map[string]Client, q string, status string) []Project {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if q != "" {
			clientName := ""
			if c, ok := clientsByID[p.ClientID]; ok {
				clientName = c.Name
			}
			if !strings.Contains(strings.ToLower(p.Title), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) &&
				!strings.Contains(strings.ToLower(clientName), q) {
				continue
			}
		}
		if status != "" && status != "all" && string(p.Status) != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func ClientsByID(clients []Client) map[string]Client {
	m := make(map[string]Client, len(clients))
	for _, c := range clients {
		m[c.ID] = c
	}
	return m
}

// ClientProjects returns the projects belonging to one client.
func ClientProjects(projects []Project, clientID string) []Project {
	var out []Project
	for _, p := range projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// ActiveProjectCount counts a client's projects that are not Done.
func ActiveProjectCount(projects []Project, clientID string) int {
	n := 0
	for _, p := range ClientProjects(projects, clientID) {
		if p.Status != ProjectStatusDone {
			n++
		}
	}
	return n
}

// TotalBudget sums the budgets of a client's projects (nil budgets count as 0).
func TotalBudget(projects []Project, clientID string) float64 {
	total := 0.0
	for _, p := range ClientProjects(projects, clientID) {
		if p.Budget != nil {
			total += *p.Budget
		}
	}
	return total
}
