package template

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон слота не найден
	ErrTemplateNotFound = errors.New("template.repository: slot template not found")

	// ErrDuplicateTemplate возвращается при попытке создать шаблон
	// на уже занятое время для того же кафе
	ErrDuplicateTemplate = errors.New("template.repository: slot template already exists for this time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("template.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("template.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("template.repository: failed to scan row")
)
