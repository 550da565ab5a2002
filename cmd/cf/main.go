package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"codeforces-client/cmd/cf/commands"
	"codeforces-client/internal/components/telemetry"
)

func main() {
	ctx := context.Background()

	tel, err := telemetry.SetupFromEnv(ctx, "cf")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer tel.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
