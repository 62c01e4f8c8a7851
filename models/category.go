// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category groups inventories. Labels are unique case-insensitively.
type Category struct {
	CategoryID int64  `json:"id"`
	Label      string `json:"category"`
}
