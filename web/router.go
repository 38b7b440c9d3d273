package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sHooPmyWooP/roundnet/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, admin AdminAuth) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playersHandler(ctrl, render))
		r.Post("/", createPlayerHandler(ctrl, render))
		r.Get("/{playerID}", getPlayerHandler(ctrl, render))
		r.Post("/{playerID}", updatePlayerHandler(ctrl, render))
	})

	r.Route("/days", func(r chi.Router) {
		r.Get("/", playingDaysHandler(ctrl, render))
		r.Post("/", createPlayingDayHandler(ctrl, render))
		r.Get("/{dayID}", getPlayingDayHandler(ctrl, render))
		r.Post("/{dayID}/roster", assignRosterHandler(ctrl, render))
		r.Post("/{dayID}/teams", generateTeamsHandler(ctrl, render))
		r.Post("/{dayID}/games", recordGameHandler(ctrl, render))
	})

	r.Get("/partnerships", partnershipsHandler(ctrl, render))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("roundnet", map[string]string{admin.User: admin.Password}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/partnerships", rebuildPartnershipsHandler(ctrl, render))
	})

	return r
}
