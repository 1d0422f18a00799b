package response

type SubscribeResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type ConfirmSubscriptionResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
