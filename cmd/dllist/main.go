package main

import (
	"context"
	"os"

	"github.com/mgnsk/dllist/cmd"
	"github.com/mgnsk/dllist/internal/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(cmd.NewLogger(os.Stderr, envconfig.Debug()))

	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
