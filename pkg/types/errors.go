// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// ErrIndexOutOfRange reports an access to a record index outside the
// current ResultSet. Callers range-check user input first, so seeing this
// error means a wiring bug, not a user mistake.
var ErrIndexOutOfRange = errors.New("record index out of range")
