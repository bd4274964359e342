package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

type ResetPasswordMailData struct {
	Name       string `json:"name"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type CompanyApprovalMailData struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Approved    bool   `json:"approved"`
}

type ApplicationStatusMailData struct {
	Name        string            `json:"name"`
	JobTitle    string            `json:"jobTitle"`
	CompanyName string            `json:"companyName"`
	Status      ApplicationStatus `json:"status"`
}
