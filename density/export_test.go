// SPDX-License-Identifier: MIT

package density

// Test-Bridge (White-Box) for the moment recursion.
//
// Purpose:
//   - Expose the unexported mValue kernel to density_test ONLY, so the
//     recursion can be pinned against its defining identities without
//     widening the production API.
var MValue = mValue
