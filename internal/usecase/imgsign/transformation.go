package imgsign

import "fmt"

// qualityFormats are the lossy formats a q: option applies to. PNG is
// treated as lossless and never carries a quality suffix.
var qualityFormats = map[string]bool{
	FormatJPEG: true,
	FormatWebP: true,
	FormatAVIF: true,
}

// BuildTransformation maps a validated request to the transformation token
// consumed by the image proxy. Precedence is fixed: explicit gravity wins
// over a bare crop flag, which wins over fit-to-box. Callers passing both
// gravity and crop rely on this ordering for framing.
func BuildTransformation(req SignRequest) string {
	var t string
	switch {
	case req.Gravity != "":
		t = fmt.Sprintf("c:%d:%d:%s", req.Width, req.Height, req.Gravity)
	case req.Crop:
		// Bare crop implies center gravity on the proxy side.
		t = fmt.Sprintf("c:%d:%d", req.Width, req.Height)
	default:
		t = fmt.Sprintf("rs:fit:%d:%d", req.Width, req.Height)
	}

	if req.Quality >= 1 && req.Quality <= 100 && qualityFormats[req.Format] {
		t += fmt.Sprintf("/q:%d", req.Quality)
	}

	return t
}
