package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moea/cmd/moea/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := app.NewMOEACommand(os.Stdout)
	code := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		klog.ErrorS(err, "Command failed")
		code = 1
	}
	klog.Flush()
	stop()
	os.Exit(code)
}
