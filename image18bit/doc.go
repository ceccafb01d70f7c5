// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image18bit implements the 18-bit RGB666 color format used by the
// ILI9488's CPU interface, plus an image.Image backed by it.
package image18bit
