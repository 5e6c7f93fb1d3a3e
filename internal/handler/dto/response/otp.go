package response

type OtpStatusResponse struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type OtpCleanupResponse struct {
	Deleted int64 `json:"deleted"`
}
