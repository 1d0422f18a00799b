package response

type SignedURLResponse struct {
	URL string `json:"url"`
}
