// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes scenes into pixel buffers.
//
// The renderer is pure: given the same scene revision, frame, view
// transform, and target size it always produces the same pixels. That
// purity is what makes the frame cache sound; cached frames are keyed
// by exactly those inputs and never invalidated by time.
package render
