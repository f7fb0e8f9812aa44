// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vubib/internal/core/agent"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Peter Brown", (&agent.Agent{FirstName: "Peter", LastName: "Brown"}).DisplayName())
	assert.Equal(t, "Augustine", (&agent.Agent{LastName: "Augustine"}).DisplayName())
	assert.Empty(t, (&agent.Agent{OrganizationName: "Brepols"}).DisplayName())
}

func TestCreditName(t *testing.T) {
	assert.Equal(t, " Augustine", agent.Credit{LastName: "Augustine"}.Name())
}
