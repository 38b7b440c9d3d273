package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sHooPmyWooP/roundnet/controller"
	"github.com/sHooPmyWooP/roundnet/db"
	"github.com/sHooPmyWooP/roundnet/model"
	"github.com/unrolled/render"
)

func rootHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := ctrl.Summary(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "index", summary)
	}
}

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "players", players)
	}
}

func createPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		skill, err := strconv.Atoi(r.PostForm.Get("skill"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing skill level: %v", err))
			return
		}

		p, err := ctrl.CreatePlayer(r.Context(), r.PostForm.Get("name"), skill)
		if err != nil {
			renderError(render, w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/players/%s", p.ID), http.StatusSeeOther)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		stats, err := ctrl.GetPlayerStats(r.Context(), playerID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"player": p,
			"stats":  stats,
		}
		render.HTML(w, http.StatusOK, "player", data)
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		playerID := chi.URLParam(r, "playerID")

		switch action := r.PostForm.Get("action"); action {
		case "skill":
			skill, err := strconv.Atoi(r.PostForm.Get("skill"))
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing skill level: %v", err))
				return
			}
			if err := ctrl.UpdatePlayerSkill(r.Context(), playerID, skill); err != nil {
				renderError(render, w, err)
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/players/%s", playerID), http.StatusSeeOther)
		case "delete":
			if err := ctrl.DeletePlayer(r.Context(), playerID); err != nil {
				if errors.Is(err, db.ErrPlayerInUse) {
					render.HTML(w, http.StatusBadRequest, "400", "player is still referenced by a playing day or game")
					return
				}
				renderError(render, w, err)
				return
			}
			http.Redirect(w, r, "/players", http.StatusSeeOther)
		default:
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("unknown action: %s", action))
		}
	}
}

func playingDaysHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := ctrl.ListPlayingDays(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "days", days)
	}
}

func createPlayingDayHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		date, err := time.Parse(time.DateOnly, r.PostForm.Get("date"))
		if err != nil {
			msg := fmt.Sprintf("Unable to parse date. Expected format is YYYY-MM-DD: %v", err)
			render.HTML(w, http.StatusBadRequest, "400", msg)
			return
		}

		d, err := ctrl.CreatePlayingDay(r.Context(), date, r.PostForm.Get("location"), r.PostForm.Get("description"))
		if err != nil {
			renderError(render, w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/days/%s", d.ID), http.StatusSeeOther)
	}
}

func getPlayingDayHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dayID := chi.URLParam(r, "dayID")
		day, err := ctrl.GetPlayingDay(r.Context(), dayID)
		if err != nil {
			if errors.Is(err, db.ErrPlayingDayNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "playing day not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		games, err := ctrl.ListGamesForDay(r.Context(), dayID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		names := make(map[string]string, len(players))
		for _, p := range players {
			names[p.ID] = p.Name
		}

		data := map[string]any{
			"day":        day,
			"players":    players,
			"games":      games,
			"names":      names,
			"algorithms": model.Algorithms(),
		}
		render.HTML(w, http.StatusOK, "day", data)
	}
}

func assignRosterHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		dayID := chi.URLParam(r, "dayID")
		if err := ctrl.AssignRoster(r.Context(), dayID, r.PostForm["players"]); err != nil {
			renderError(render, w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/days/%s", dayID), http.StatusSeeOther)
	}
}

func generateTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		dayID := chi.URLParam(r, "dayID")
		algorithm := model.ParseAlgorithm(r.PostForm.Get("algorithm"))

		if _, err := ctrl.GenerateTeams(r.Context(), dayID, algorithm, nil); err != nil {
			renderError(render, w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/days/%s", dayID), http.StatusSeeOther)
	}
}

func recordGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		dayID := chi.URLParam(r, "dayID")

		teamA := r.PostForm["team-a"]
		teamB := r.PostForm["team-b"]
		if len(teamA) != 2 || len(teamB) != 2 {
			render.HTML(w, http.StatusBadRequest, "400", "each team needs exactly two players")
			return
		}

		duration := 0
		if d := r.PostForm.Get("duration"); d != "" {
			var err error
			duration, err = strconv.Atoi(d)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing duration: %v", err))
				return
			}
		}

		result := model.ParseResult(r.PostForm.Get("result"))
		notes := r.PostForm.Get("notes")

		_, err := ctrl.RecordGame(r.Context(), dayID, model.NewTeam(teamA[0], teamA[1]), model.NewTeam(teamB[0], teamB[1]), result, duration, notes)
		if err != nil {
			renderError(render, w, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/days/%s", dayID), http.StatusSeeOther)
	}
}

func partnershipsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerships, err := ctrl.ListPartnerships(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		names := make(map[string]string, len(players))
		for _, p := range players {
			names[p.ID] = p.Name
		}

		data := map[string]any{
			"partnerships": partnerships,
			"names":        names,
		}
		render.HTML(w, http.StatusOK, "partnerships", data)
	}
}

func rebuildPartnershipsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RebuildPartnerships(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error rebuilding partnerships: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "partnership rebuild completed successfully")
	}
}

// renderError maps the controller's error families onto HTTP statuses:
// validation and consistency problems are the caller's to fix, missing
// entities are 404s, everything else is a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, controller.ErrValidation), errors.Is(err, controller.ErrConsistency):
		render.HTML(w, http.StatusBadRequest, "400", err.Error())
	case errors.Is(err, db.ErrPlayerNotFound), errors.Is(err, db.ErrPlayingDayNotFound), errors.Is(err, db.ErrGameNotFound):
		render.HTML(w, http.StatusNotFound, "404", err.Error())
	default:
		render.HTML(w, http.StatusInternalServerError, "500", err.Error())
	}
}
