// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines the index vocabulary shared between the indexer, the deleter and the
transport so that field values and id prefixes never drift between them.

Categories:

  - Metadata: application name and version.
  - Timing: statement and startup deadlines.
  - Index Vocabulary: record formats, collection name, id prefixes, delimiters.
  - Run Locking: Redis key taxonomy.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "vubib"
	AppVersion = "0.1.0-dev"
)

// # Timing

const (
	// StatementTimeout bounds every SQL statement issued by the exporter.
	StatementTimeout = 60 * time.Second

	// StartupTimeout bounds connecting to PostgreSQL and Redis.
	StartupTimeout = 30 * time.Second
)

// # Index Vocabulary

const (
	// Collection is the value of the "collection" field on every document.
	Collection = "Bibliography"

	RecordFormatWork   = "augustine"
	RecordFormatFolder = "augustinefolder"
	RecordFormatAgent  = "augustineagent"

	// Document id prefixes. Works use their bare numeric id.
	PrefixWork   = ""
	PrefixFolder = "folder-"
	PrefixAgent  = "agent-"

	// TopicDelimiter separates chain members in topic_*_str_mv fields.
	TopicDelimiter = "§"

	// SlashPlaceholder replaces a literal "/" inside a topic_hierarchy label.
	SlashPlaceholder = "$slash$"

	// BrowseSeparator joins a title and an id in hierarchy_browse values.
	BrowseSeparator = "{{{_ID_}}}"
)

// # Run Locking

const (
	RedisPrefixRunLock = "vubib:lock:"
)
