// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package agent holds the people and organizations credited on works.
package agent

import "strings"

// Agent is a person or organization.
type Agent struct {
	ID               int
	FirstName        string
	LastName         string
	AlternateName    string
	OrganizationName string
	Email            string
}

// Credit is an agent's role on one work, e.g. "Author" or "Editor".
type Credit struct {
	AgentID   int
	FirstName string
	LastName  string
	Role      string
}

// DisplayName returns "first last", trimmed.
func (a *Agent) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Name returns the credited "first last" name. It is not trimmed, so a
// missing first name keeps its separator.
func (c Credit) Name() string {
	return c.FirstName + " " + c.LastName
}
