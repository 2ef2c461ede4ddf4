// SPDX-License-Identifier: MIT

// Bridge for white-box tests: exposes internal guards so the external test
// package can probe the shared bounds semantics directly.

package matrix

// ExportedReadGuard bridges readGuard for white-box tests.
var ExportedReadGuard = readGuard

// ExportedWriteGuard bridges writeGuard for white-box tests.
var ExportedWriteGuard = writeGuard

// ExportedResolveBuffer bridges resolveBuffer for white-box tests.
var ExportedResolveBuffer = resolveBuffer
