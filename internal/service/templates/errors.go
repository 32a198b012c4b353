package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("templates.service: template not found")

	// ErrDuplicateTemplate возвращается при создании шаблона на занятое время
	ErrDuplicateTemplate = errors.New("templates.service: template already exists for this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("templates.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("templates.service: internal error")
)
