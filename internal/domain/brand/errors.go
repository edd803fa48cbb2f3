package brand

import "errors"

// ErrNotAvailable indicates a collaborator feature that is not part of this
// build (the demo speech synthesizer always returns it).
var ErrNotAvailable = errors.New("feature not available in this build")
