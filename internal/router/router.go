package router

import (
	"database/sql"
	"net/http"

	_ "cat-registry/docs"
	"cat-registry/internal/adapters/storage/jsonfile"
	mem "cat-registry/internal/adapters/storage/memory"
	pg "cat-registry/internal/adapters/storage/postgres"
	"cat-registry/internal/domain/activity"
	"cat-registry/internal/domain/cats"
	"cat-registry/internal/middleware"
	"cat-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = sin logs

	// Backend: si viene DB usa Postgres, si no Store (archivo JSON).
	// Sin ninguno de los dos queda todo in-memory.
	DB    *sql.DB
	Store *jsonfile.Store
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.ActivitySource)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		catRepo      cats.Repository
		activityRepo activity.Repository
	)

	switch {
	case opts.DB != nil:
		catRepo = pg.NewCatsRepo(opts.DB)
		activityRepo = pg.NewActivityRepo(opts.DB)
	case opts.Store != nil:
		// la actividad no se persiste en el archivo de datos
		catRepo = opts.Store
		activityRepo = mem.NewActivityRepo()
	default:
		catRepo = mem.NewCatRepo()
		activityRepo = mem.NewActivityRepo()
	}

	// Services por módulo
	activitySvc := activity.NewService(activityRepo)
	catsSvc := cats.NewService(catRepo, activitySvc, log)

	// Rutas por módulo
	cats.RegisterRoutes(r, catsSvc)
	activity.RegisterRoutes(r, activitySvc)

	return r
}
