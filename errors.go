// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lazytree

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned by Find when the value is absent or only
	// present as a tombstone.
	ErrNotFound = errors.New("lazytree: value not found")

	// ErrEmptyTree is returned by FindMin and FindMax when the tree holds
	// no live values.
	ErrEmptyTree = errors.New("lazytree: tree is empty")
)
