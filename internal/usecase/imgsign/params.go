package imgsign

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	FormatAVIF = "avif"
	FormatWebP = "webp"
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
)

var validFormats = map[string]bool{
	FormatAVIF: true,
	FormatWebP: true,
	FormatJPEG: true,
	FormatPNG:  true,
}

// gravityTokens are the fixed gravity values understood by the image proxy:
// center, the eight compass points, smart/saliency detection and entropy.
var gravityTokens = map[string]bool{
	"ce": true, "north": true, "south": true, "east": true, "west": true,
	"north_east": true, "north_west": true, "south_east": true, "south_west": true,
	"sm": true, "so": true, "et": true,
}

var (
	ErrMissingParams  = fmt.Errorf("missing required parameters")
	ErrInvalidFormat  = fmt.Errorf("invalid format")
	ErrInvalidGravity = fmt.Errorf("invalid gravity")
)

// MissingParamsError reports which required query parameters were absent or
// unusable. It unwraps to ErrMissingParams so handlers can match on the class.
type MissingParamsError struct {
	Fields []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("missing required parameters: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingParamsError) Unwrap() error { return ErrMissingParams }

// SignRequest is one validated signing request. Quality is zero when the
// caller omitted it or supplied an unusable value.
type SignRequest struct {
	SourceURL string
	Width     int
	Height    int
	Format    string
	Gravity   string
	Crop      bool
	Quality   int
}

// ParseRequest validates raw query parameters into a SignRequest. The
// returned warnings describe non-fatal anomalies (today: a bad quality value)
// that the caller should log before proceeding.
func ParseRequest(q url.Values) (SignRequest, []string, error) {
	var req SignRequest
	var warnings []string

	req.SourceURL = q.Get("src")
	req.Width = parsePositiveInt(q.Get("width"))
	req.Height = parsePositiveInt(q.Get("height"))

	rawFormat := strings.ToLower(strings.TrimSpace(q.Get("format")))

	var missing []string
	if req.SourceURL == "" {
		missing = append(missing, "src")
	}
	if req.Width == 0 {
		missing = append(missing, "width")
	}
	if req.Height == 0 {
		missing = append(missing, "height")
	}
	if rawFormat == "" {
		missing = append(missing, "format")
	}
	if len(missing) > 0 {
		return SignRequest{}, nil, &MissingParamsError{Fields: missing}
	}

	if rawFormat == "jpg" {
		rawFormat = FormatJPEG
	}
	if !validFormats[rawFormat] {
		return SignRequest{}, nil, ErrInvalidFormat
	}
	req.Format = rawFormat

	// A bare host/path is repaired, not rejected.
	if !strings.HasPrefix(req.SourceURL, "http://") && !strings.HasPrefix(req.SourceURL, "https://") {
		req.SourceURL = "https://" + req.SourceURL
	}

	if rawGravity := strings.ToLower(strings.TrimSpace(q.Get("gravity"))); rawGravity != "" {
		if !isValidGravity(rawGravity) {
			return SignRequest{}, nil, ErrInvalidGravity
		}
		req.Gravity = rawGravity
	}

	req.Crop = q.Get("crop") == "true"

	if rawQuality := q.Get("quality"); rawQuality != "" {
		quality, err := strconv.Atoi(rawQuality)
		if err != nil || quality < 1 || quality > 100 {
			// Quality is an enhancement, never a reason to fail the request.
			warnings = append(warnings, fmt.Sprintf("invalid quality value %q, ignoring", rawQuality))
		} else {
			req.Quality = quality
		}
	}

	return req, warnings, nil
}

func parsePositiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func isValidGravity(g string) bool {
	if gravityTokens[g] {
		return true
	}
	if name, ok := strings.CutPrefix(g, "object:"); ok {
		return name != ""
	}
	if rest, ok := strings.CutPrefix(g, "fp:"); ok {
		x, y, found := strings.Cut(rest, ":")
		if !found {
			return false
		}
		_, errX := strconv.ParseFloat(x, 64)
		_, errY := strconv.ParseFloat(y, 64)
		return errX == nil && errY == nil
	}
	return false
}
