package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spetersoncode/redux/store"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, newMemoryBackend(cfg.Latency)); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, backend Backend) error {
	s := store.New(Reducer, store.WithLogger(slog.Default()))
	unsubscribe := s.Subscribe(func(state State) {
		slog.Info("state changed", "todos", len(state.Todos), "loading", state.Loading)
	})
	defer unsubscribe()

	slog.Info("importing todos", "sources", cfg.Sources)
	if err := s.Run(ctx, ImportTodos(backend, cfg.Sources)); err != nil {
		return err
	}

	s.Dispatch(TodoAdded.New(NewTodo("try the store")))
	if todos := s.State().Todos; len(todos) > 0 {
		s.Dispatch(TodoToggled.New(todos[0].ID))
	}

	for _, t := range s.State().Todos {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Printf("[%s] %s\n", mark, t.Title)
	}
	return nil
}
