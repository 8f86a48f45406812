package web

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/salestrace/salestrace/internal/cache"
	"github.com/salestrace/salestrace/internal/cli"
	"github.com/salestrace/salestrace/internal/client"
	"github.com/salestrace/salestrace/internal/config"
	"github.com/salestrace/salestrace/internal/logger"
	"github.com/salestrace/salestrace/internal/server"
)

type webCommand struct {
}

func NewCommand() cli.Command {
	return webCommand{}
}

func (c webCommand) Description() string {
	return "Serves the sales dashboard"
}

var port string
var timeout int

const defaultTimeout = 3

func (c webCommand) SetFlags(fs *flag.FlagSet) {
	port = os.Getenv("SALESTRACE_PORT")

	fs.StringVar(&port, "p", port, "port")
	fs.IntVar(&timeout, "t", defaultTimeout, "read header timeout in seconds")
}

func (c webCommand) Run(conf *config.Config, log *logger.Logger) error {
	if port == "" {
		port = conf.Port
	}

	transactionsClient := client.New(conf.Endpoint, log)
	transactionCache := cache.New(
		transactionsClient,
		conf.Cache.StaleAfter.Duration,
		conf.Cache.ExpireAfter.Duration,
		log,
	)

	handler := server.New(transactionCache, log)
	log.Info("open the dashboard", "url", fmt.Sprintf("http://localhost:%s", port))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		ReadHeaderTimeout: time.Duration(timeout) * time.Second,
		Handler:           handler.HTTPHandler,
	}
	return httpServer.ListenAndServe()
}
