// SPDX-License-Identifier: Apache-2.0

package http

// msgStoreNotConfigured is the body returned by every data-touching endpoint
// when no storage backend was constructed at startup. The wording names the
// variables an operator has to set.
const msgStoreNotConfigured = "Supabase not configured. Set SUPABASE_URL and SUPABASE_KEY environment variables."
