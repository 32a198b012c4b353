package delete_template

import "context"

type TemplatesService interface {
	Delete(ctx context.Context, cafeID, templateID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
