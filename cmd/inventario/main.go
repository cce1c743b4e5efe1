package main

import (
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/service"
	"github.com/kevinalex1994/Inventario-Marcimex/pkg/infrastructure/config"
	"github.com/kevinalex1994/Inventario-Marcimex/pkg/infrastructure/event"
	"github.com/kevinalex1994/Inventario-Marcimex/pkg/infrastructure/persistence/mysql"
	"github.com/kevinalex1994/Inventario-Marcimex/pkg/infrastructure/transport/console"
)

func main() {
	app := &cli.App{
		Name:  "inventario",
		Usage: "gestión de inventario — Almacenes Marcimex",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "MySQL DSN of the durable store (overrides INVENTORY_DSN)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "path of the JSON log file (overrides INVENTORY_LOG_FILE)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("startup failed")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.IsSet("dsn") {
		cfg.DSN = c.String("dsn")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}

	logger := newLogger(cfg.LogFile)

	db, err := sqlx.Connect("mysql", cfg.DSN)
	if err != nil {
		return errors.Wrap(err, "connect to store")
	}
	defer db.Close()

	if err := mysql.Bootstrap(db); err != nil {
		return err
	}

	repo := mysql.NewProductRepository(db)
	dispatcher := event.NewLogDispatcher(logger)

	inventory, err := service.NewInventory(c.Context, repo, dispatcher)
	if err != nil {
		return errors.Wrap(err, "load inventory")
	}

	logger.Info("inventory loaded, starting menu")

	menu := console.NewMenu(inventory, logger, os.Stdin, os.Stdout)
	return menu.Run(c.Context)
}

// newLogger writes JSON logs to a file so stdout stays clean for the menu.
// If the file cannot be opened the logs fall back to stderr.
func newLogger(path string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		logger.SetOutput(file)
	}
	return logger
}
