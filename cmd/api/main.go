package main

import (
	"context"
	"net/http"
	"strings"

	"bus-searcher-api/internal/config"
	"bus-searcher-api/internal/gbis"
	"bus-searcher-api/internal/handler"
	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/repository"
	"bus-searcher-api/internal/service"

	_ "bus-searcher-api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// stopStore is the slice of the repository the services need.
type stopStore interface {
	InitSchema(ctx context.Context) error
	UpsertStop(ctx context.Context, stop models.BusStop) (bool, error)
	ListStops(ctx context.Context) ([]models.BusStop, error)
	UpsertRoute(ctx context.Context, route models.BusRoute) (bool, error)
}

//	@title			Bus Searcher API
//	@version		0.1.0
//	@description	API for searching and managing bus routes in Pangyo-dong, Seongnam
func main() {
	config, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Storage backend: postgres when configured, embedded SQLite otherwise
	var repo stopStore
	if strings.HasPrefix(config.DBSource, "postgres://") || strings.HasPrefix(config.DBSource, "postgresql://") {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		repo = repository.NewPostgres(conn)
	} else {
		db, err := repository.OpenSQLite(config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open sqlite db")
		}
		defer db.Close()
		repo = db
	}

	if err := repo.InitSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	client := gbis.NewClient(config.BusAPIBaseURL, config.BusAPIKey, config.ClientTimeout)

	// Initialize layers
	ingestService := service.NewIngestService(client, repo, config.GridRows, config.GridCols)
	stopService := service.NewStopService(client, repo)
	routeService := service.NewRouteService(client, repo)
	ridershipService := service.NewRidershipService()
	catalogService := service.NewCatalogService()

	ingestHandler := handler.NewIngestHandler(ingestService)
	stopsHandler := handler.NewStopsHandler(stopService)
	routesHandler := handler.NewRoutesHandler(routeService)
	statisticsHandler := handler.NewStatisticsHandler(ridershipService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Bus Searcher API - Pangyo-dong Statistics",
			"version": "0.1.0",
			"endpoints": gin.H{
				"mock_data": gin.H{
					"stops":            "/api/statistics/stops",
					"weekly_ridership": "/api/statistics/weekly/{stop_id}",
				},
				"real_api": gin.H{
					"fetch_stops":  "/api/real/fetch-stops",
					"saved_stops":  "/api/real/stops",
					"stop_detail":  "/api/real/stops/{stop_id}/info",
					"route_detail": "/api/real/routes/{route_id}/info",
				},
				"docs": "/swagger/index.html",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	r.GET("/routes", catalogHandler.ListRoutes)
	r.GET("/routes/:route_id", catalogHandler.GetRoute)
	r.GET("/stops", catalogHandler.ListStops)
	r.GET("/stops/:stop_id", catalogHandler.GetStop)
	r.GET("/search", catalogHandler.SearchRoutes)

	statistics := r.Group("/api/statistics")
	{
		statistics.GET("/stops", statisticsHandler.ListAreaStops)
		statistics.GET("/weekly/:stop_id", statisticsHandler.GetWeeklyRidership)
		statistics.GET("/top-stops", statisticsHandler.GetTopStops)
		statistics.GET("/summary", statisticsHandler.GetSummary)
	}

	real := r.Group("/api/real")
	{
		real.GET("/fetch-stops", ingestHandler.FetchStops)
		real.GET("/stops", stopsHandler.ListSavedStops)
		real.GET("/stops/:stop_id/info", stopsHandler.GetStopInfo)
		real.GET("/routes/:route_id/info", routesHandler.GetRouteInfo)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
