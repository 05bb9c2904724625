package launch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task - долгоживущая часть хоста (цикл симуляции, HTTP сервер).
// Должна вернуть nil после отмены ctx.
type Task func(ctx context.Context) error

// Supervise запускает задачи на общем контексте. Первая ошибка отменяет
// остальные; возвращается, когда остановились все.
func Supervise(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error { return task(gctx) })
	}
	return g.Wait()
}
