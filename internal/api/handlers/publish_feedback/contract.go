package publish_feedback

import "context"

type FeedbackService interface {
	SetPublished(ctx context.Context, id int64, published bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
