// Command confmerge merges configuration fragments against a definition and
// prints the result.
//
//	confmerge merge -d definition.yaml base.yaml local.json
//	confmerge check -d definition.yaml --strict-keys base.yaml
//	confmerge definition -d definition.yaml base.yaml
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/reoring/confmerge"
	"github.com/reoring/confmerge/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if iss, ok := confmerge.AsIssues(err); ok {
			for _, it := range iss {
				l.Error(it.Message, zap.String("code", it.Code), zap.String("path", it.Path))
			}
		} else {
			l.Error("command failed", zap.Error(err))
		}
		_ = l.Sync()
		os.Exit(1)
	}
}
