package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/config"
	"github.com/articard-dev/guard-journal/backend/internal/repository"
	"github.com/articard-dev/guard-journal/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var year int
	var month int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random shifts, 2: insert random shift templates)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.IntVar(&year, "year", time.Now().Year(), "year to seed shifts into")
	flag.IntVar(&month, "month", int(time.Now().Month()), "month to seed shifts into (1-12)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only creates the pool object, it does not connect yet, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("please give a valid number of shifts")
			return
		}
		if month < 1 || month > 12 {
			slog.Error("please give a valid month", slog.Int("month", month))
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			shift := utils.GenerateRandomShift(year, month)
			if err := repo.CreateShift(shift); err != nil {
				slog.Error("unable to insert shift", slog.String("error", err.Error()))
				continue
			}

			for j := range shift.Incidents {
				if err := repo.AddIncident(shift.ID, &shift.Incidents[j]); err != nil {
					slog.Error("unable to insert incident", slog.String("error", err.Error()))
				}
			}

			cnt++
		}

		slog.Info("shifts inserted", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("please give a valid number of templates")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			template := utils.GenerateRandomShiftTemplate()
			if err := repo.CreateShiftTemplate(template); err != nil {
				slog.Error("unable to insert shift template", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("shift templates inserted", slog.Int("count", cnt))
	default:
		slog.Error("unknown operation")
	}
}
