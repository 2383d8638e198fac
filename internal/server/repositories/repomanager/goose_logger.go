package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/footsteps/internal/logging"
)

// gooseLogger routes goose output into the server logger.
type gooseLogger struct {
	l logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
