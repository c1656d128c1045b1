package domain

// MailMessage 经 JSON 序列化后投递到消息队列，Data 在消费端会被解码成
// map，因此各数据结构的字段名必须与模板中的占位符一致。
type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateOperatorMailData struct {
	FullName string
	Username string
	Password string
}

type ResetPasswordMailData struct {
	FullName   string
	OTP        string
	Expiration int
}

type ChangeEmailMailData struct {
	FullName   string
	OTP        string
	Expiration int
}

type PaymentDecisionMailData struct {
	FullName string
	PlanName string
	Amount   string
	Reason   string
}
