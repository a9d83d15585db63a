// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse layer for hioload-rb. Rings are cheap but not free (a mapped region
// costs two syscalls), so pipelines that churn through short-lived rings
// check them out of a RingPool instead of allocating per use.
package pool
