package dbmetrics

import "context"

type txContextKey struct{}

// ContextWithTx кладет активную транзакцию в context
// Используется transaction manager'ом для проброса транзакции в репозитории
func ContextWithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе def
// Репозитории вызывают этот хелпер перед каждым запросом - так один и тот же
// метод репозитория работает и в транзакции, и без неё
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
