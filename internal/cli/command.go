package cli

import (
	"flag"

	"github.com/salestrace/salestrace/internal/config"
	"github.com/salestrace/salestrace/internal/logger"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(conf *config.Config, logger *logger.Logger) error
}
