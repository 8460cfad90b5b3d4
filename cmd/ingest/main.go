package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"bus-searcher-api/internal/config"
	"bus-searcher-api/internal/gbis"
	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/repository"
	"bus-searcher-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

type store interface {
	InitSchema(ctx context.Context) error
	UpsertStop(ctx context.Context, stop models.BusStop) (bool, error)
	ListStops(ctx context.Context) ([]models.BusStop, error)
}

func main() {
	latMin := flag.Float64("lat-min", service.PangyoBounds.LatMin, "southern edge of the area to ingest")
	latMax := flag.Float64("lat-max", service.PangyoBounds.LatMax, "northern edge of the area to ingest")
	lonMin := flag.Float64("lon-min", service.PangyoBounds.LonMin, "western edge of the area to ingest")
	lonMax := flag.Float64("lon-max", service.PangyoBounds.LonMax, "eastern edge of the area to ingest")
	flag.Parse()

	if *latMin >= *latMax || *lonMin >= *lonMax {
		fmt.Println("Error: bounds must satisfy lat-min < lat-max and lon-min < lon-max")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var repo store
	if strings.HasPrefix(cfg.DBSource, "postgres://") || strings.HasPrefix(cfg.DBSource, "postgresql://") {
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			fmt.Printf("Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()
		repo = repository.NewPostgres(conn)
	} else {
		db, err := repository.OpenSQLite(cfg.DBSource)
		if err != nil {
			fmt.Printf("Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = db
	}

	if err := repo.InitSchema(ctx); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	client := gbis.NewClient(cfg.BusAPIBaseURL, cfg.BusAPIKey, cfg.ClientTimeout)
	ingest := service.NewIngestService(client, repo, cfg.GridRows, cfg.GridCols)

	bounds := service.Bounds{LatMin: *latMin, LatMax: *latMax, LonMin: *lonMin, LonMax: *lonMax}
	fmt.Printf("Starting ingestion for lat [%f, %f], lon [%f, %f]\n",
		bounds.LatMin, bounds.LatMax, bounds.LonMin, bounds.LonMax)

	result, err := ingest.IngestArea(ctx, bounds)
	if err != nil {
		fmt.Printf("Error ingesting area: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	stored, err := repo.ListStops(ctx)
	if err != nil {
		fmt.Printf("Error verifying ingestion: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s: found %d stops, saved %d, repository now holds %d\n",
		result.RunID, result.TotalFound, result.Saved, len(stored))
}
