// Package core runs check-ins end to end: load input, score, record history and print.
package core

import (
	"context"
	"fmt"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// ExecutorFunc defines the function signature for executing a command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// rubricsFor returns the active rubrics of a config, falling back to the defaults.
func rubricsFor(cfg *contract.Config) *schema.Rubrics {
	if cfg.Rubrics != nil {
		return cfg.Rubrics
	}
	return schema.DefaultRubrics()
}

// errNoInput is returned when a check-in has neither a file nor a prompt.
func errNoInput(domain schema.Domain) error {
	return fmt.Errorf("%s check-in needs --input <file> or --interactive", domain)
}
