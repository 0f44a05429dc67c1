// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package deque

import "github.com/lfdeque/lfdeque/internal/cerr"

// These are not returned to callers; Deque's public operations have no
// recoverable error cases (push always succeeds, pop distinguishes
// empty via a boolean). They exist only as panic values for conditions
// that indicate a broken invariant rather than an expected outcome, in
// the same spirit as the sentinel constants a caller is never meant to
// see on a success path.
// errAnchorCorrupt is raised by stabilize if an anchor carries a status
// value other than stable, lpush or rpush.
const errAnchorCorrupt = cerr.Error("deque: anchor invariant violated")
