// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the catalog tables and columns read by the exporter.
//
// Repositories build their SQL from these definitions instead of string
// literals so that a renamed column is a one-line change.
package schema
