package domain

const (
	MailTypeVerification = "verification"
	MailTypeSendResume   = "send_resume"
)

// MailMessage is the envelope published to the email queue; the worker
// picks the template and data shape by Type.
type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type VerificationMailData struct {
	Alumni     string `json:"alumni"`
	Names      string `json:"names"`
	Surnames   string `json:"surnames"`
	Link       string `json:"link"`
	Expiration int    `json:"expiration"` // hours shown in the mail body
}

type SendResumeMailData struct {
	Alumni   string `json:"alumni"`
	Names    string `json:"names"`
	Surnames string `json:"surnames"`
	Position string `json:"position"`
	// Rendered PDF; travels base64-encoded inside the queue message.
	ResumePDF []byte `json:"resumePdf"`
}
