// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query splits delimited catalog values into clean lists.
package query

import "strings"

// StringSlice splits val on sep into a trimmed slice of strings, dropping
// empty entries. "French; Latin" with sep ";" yields ["French", "Latin"].
func StringSlice(val, sep string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, sep) {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
