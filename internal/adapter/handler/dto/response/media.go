package response

import "github.com/bookline/gateway/internal/usecase/media"

type UploadResultResponse struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Size   int64  `json:"size"`
}

func UploadResultFromResult(r *media.UploadResult) UploadResultResponse {
	return UploadResultResponse{
		Key:    r.Key,
		URL:    r.URL,
		Width:  r.Width,
		Height: r.Height,
		Size:   r.Size,
	}
}
