package notify

import "errors"

var (
	// ErrSendFailed возвращается, когда SendGrid не смог отправить письмо
	ErrSendFailed = errors.New("notify: send failed")
)
