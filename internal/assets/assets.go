package assets

import _ "embed"

// FaviconSVG is the hand-authored vector favicon, written out byte for byte.
//
//go:embed favicon.svg
var FaviconSVG []byte
