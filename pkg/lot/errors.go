package lot

import "errors"

// ErrDecodingLots is returned when a lot document cannot be decoded.
var ErrDecodingLots = errors.New("failed to decode lots")
