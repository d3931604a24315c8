package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	_ "cat-shelter-admin/docs"
	mem "cat-shelter-admin/internal/adapters/storage/memory"
	"cat-shelter-admin/internal/adapters/storage/sqlstore"
	"cat-shelter-admin/internal/config"
	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/appointments"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/domain/dashboard"
	"cat-shelter-admin/internal/domain/notes"
	"cat-shelter-admin/internal/domain/reports"
	"cat-shelter-admin/internal/domain/staff"
	"cat-shelter-admin/internal/domain/tasks"
	"cat-shelter-admin/internal/middleware"
	"cat-shelter-admin/internal/platform/logger"
	"cat-shelter-admin/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger       logger.Logger     // nil => no-op
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa sqlstore con el dialecto indicado. Si no, in-memory.
	// El esquema ya tiene que estar migrado.
	DB      *sql.DB
	Dialect sqlstore.Dialect

	// nil => config.DefaultHorizons(). Un valor explícito (incluso todo en cero) se respeta.
	Horizons *config.Horizons
}

type repos struct {
	animals      animals.Repository
	care         care.Repository
	careTypes    care.TypeRepository
	notes        notes.Repository
	staff        staff.Repository
	appointments appointments.Repository
	tasks        tasks.Repository
}

func newRepos(opts Options) repos {
	if opts.DB != nil {
		st := sqlstore.New(opts.DB, opts.Dialect)
		careRepo := st.Care()
		return repos{
			animals:      st.Animals(),
			care:         careRepo,
			careTypes:    careRepo,
			notes:        st.Notes(),
			staff:        st.Staff(),
			appointments: st.Appointments(),
			tasks:        st.Tasks(),
		}
	}

	careRepo := mem.NewCareRepo()
	return repos{
		animals:      mem.NewAnimalRepo(),
		care:         careRepo,
		careTypes:    careRepo,
		notes:        mem.NewNoteRepo(),
		staff:        mem.NewStaffRepo(),
		appointments: mem.NewAppointmentRepo(),
		tasks:        mem.NewTaskRepo(),
	}
}

// NewRouter arma repos -> services -> rutas y carga los datos iniciales
// (catálogo de cuidados y personal por defecto).
func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	h := config.DefaultHorizons()
	if opts.Horizons != nil {
		h = *opts.Horizons
	}

	rp := newRepos(opts)

	// Services por módulo
	animalsSvc := animals.NewService(rp.animals)
	staffSvc := staff.NewService(rp.staff)
	careSvc := care.NewService(rp.care, rp.careTypes, animalsSvc)
	careplanSvc := careplan.NewService(rp.animals, rp.care, rp.careTypes)
	notesSvc := notes.NewService(rp.notes, animalsSvc)
	appointmentsSvc := appointments.NewService(rp.appointments, animalsSvc, staffSvc)
	tasksSvc := tasks.NewService(rp.tasks, staffSvc)
	reportsSvc := reports.NewService(rp.animals)

	horizons := careplan.Horizons{Vaccination: h.VaccinationDays, Deworming: h.DewormingDays}
	dashboardSvc := dashboard.NewService(dashboard.Sources{
		Animals:      animalsSvc,
		Appointments: appointmentsSvc,
		Staff:        staffSvc,
		Catalog:      careSvc,
		Reminders:    careplanSvc,
		Tasks:        tasksSvc,
	}, horizons, h.TaskDays)

	seed, err := care.DefaultSeed()
	if err != nil {
		return nil, fmt.Errorf("load care seed: %w", err)
	}
	seeded, err := careSvc.SeedCatalog(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("seed care catalog: %w", err)
	}
	members, err := staffSvc.SeedDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed staff: %w", err)
	}
	if seeded > 0 || members > 0 {
		log.Info("seed data loaded", map[string]any{"care_types": seeded, "staff": members})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if opts.DB != nil {
			if err := opts.DB.PingContext(r.Context()); err != nil {
				http.Error(w, "db unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	care.RegisterRoutes(r, careSvc)
	notes.RegisterRoutes(r, notesSvc)
	staff.RegisterRoutes(r, staffSvc)
	appointments.RegisterRoutes(r, appointmentsSvc)
	tasks.RegisterRoutes(r, tasksSvc, h.TaskDays)
	careplan.RegisterRoutes(r, careplanSvc, horizons)
	reports.RegisterRoutes(r, reportsSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r, nil
}
