// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package indexer

import (
	"context"
	"strconv"

	"github.com/taibuivan/vubib/internal/core/agent"
	"github.com/taibuivan/vubib/internal/platform/constants"
)

// indexAgent builds and submits the document of one agent. Agents have no
// hierarchy, so building cannot fail before the write.
func (r *run) indexAgent(ctx context.Context, a *agent.Agent) {
	id := constants.PrefixAgent + strconv.Itoa(a.ID)

	b := r.builder
	b.Open()

	b.Add("id", id, true)
	b.Add("record_format", constants.RecordFormatAgent, true)
	b.Add("collection", constants.Collection, true)

	title := a.DisplayName()
	b.Add("title_short", title, true)
	b.Add("title", title, true)
	b.Add("title_sort", title, true)
	b.Add("format", "Agent", true)

	b.Add("first_name_str", a.FirstName, true)
	b.Add("last_name_str", a.LastName, true)
	b.Add("alt_name_str", a.AlternateName, true)
	b.Add("org_name_str", a.OrganizationName, true)

	r.submit(ctx, KindAgent, id, nil)
}
