package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/league-console/handlers"
	"github.com/Dosada05/league-console/middleware"
	"github.com/Dosada05/league-console/models"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Sport        *handlers.SportHandler
	Modality     *handlers.ModalityHandler
	Team         *handlers.TeamHandler
	Player       *handlers.PlayerHandler
	Championship *handlers.ChampionshipHandler
	Match        *handlers.MatchHandler
	News         *handlers.NewsHandler
	Sponsor      *handlers.SponsorHandler
	History      *handlers.HistoryHandler
	Dashboard    *handlers.DashboardHandler
	WebSocket    *handlers.WebSocketHandler
}

// SetupRoutes mounts the whole API. Reads are public; every mutation sits
// behind authentication, and destructive or structural operations require
// the admin role.
func SetupRoutes(router *chi.Mux, h Handlers, jwtSecret []byte, corsOrigins []string) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticated := middleware.Authenticate(jwtSecret)
	staffOnly := middleware.Authorize(models.RoleAdmin, models.RoleEditor)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	router.Get("/ws/championships/{championshipID}", h.WebSocket.ServeWs)

	router.Route("/sports", func(r chi.Router) {
		r.Get("/", h.Sport.GetAllSports)
		r.Get("/{sportID}", h.Sport.GetSportByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Sport.CreateSport)
			r.Put("/{sportID}", h.Sport.UpdateSport)
			r.Post("/{sportID}/icon", h.Sport.UploadSportIcon)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{sportID}", h.Sport.DeleteSport)
		})
	})

	router.Route("/modalities", func(r chi.Router) {
		r.Get("/", h.Modality.ListModalities)
		r.Get("/{modalityID}", h.Modality.GetModalityByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Modality.CreateModality)
			r.Put("/{modalityID}", h.Modality.UpdateModality)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{modalityID}", h.Modality.DeleteModality)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.ListTeams)
		r.Get("/{teamID}", h.Team.GetTeamByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Team.CreateTeam)
			r.Put("/{teamID}", h.Team.UpdateTeam)
			r.Post("/{teamID}/logo", h.Team.UploadTeamLogo)
			r.Post("/{teamID}/squad/{playerID}", h.Team.AddPlayerToSquad)
			r.Delete("/{teamID}/squad/{playerID}", h.Team.RemovePlayerFromSquad)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{teamID}", h.Team.DeleteTeam)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/", h.Player.GetAllPlayers)
		r.Get("/{playerID}", h.Player.GetPlayerByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Player.CreatePlayer)
			r.Put("/{playerID}", h.Player.UpdatePlayer)
			r.Post("/{playerID}/photo", h.Player.UploadPlayerPhoto)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{playerID}", h.Player.DeletePlayer)
		})
	})

	router.Route("/championships", func(r chi.Router) {
		r.Get("/", h.Championship.ListChampionships)
		r.Get("/{championshipID}", h.Championship.GetChampionshipByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Championship.CreateChampionship)
			r.Put("/{championshipID}", h.Championship.UpdateChampionship)
			r.Post("/{championshipID}/logo", h.Championship.UploadChampionshipLogo)
			r.Put("/{championshipID}/rankings", h.Championship.SetRankings)

			r.Post("/{championshipID}/criteria", h.Championship.AddCriterion)
			r.Delete("/{championshipID}/criteria/{criterionKey}", h.Championship.RemoveCriterion)

			r.Post("/{championshipID}/phases", h.Championship.AddPhase)
			r.Patch("/{championshipID}/phases/{phaseIndex}/type", h.Championship.SetPhaseType)

			r.Post("/{championshipID}/phases/{phaseIndex}/rows", h.Championship.AddRow)
			r.Delete("/{championshipID}/phases/{phaseIndex}/rows/{rowIndex}", h.Championship.RemoveRow)
			r.Patch("/{championshipID}/phases/{phaseIndex}/rows/{rowIndex}/cells", h.Championship.SetCell)
			r.Put("/{championshipID}/phases/{phaseIndex}/rows/{rowIndex}/team", h.Championship.SelectRowTeam)

			r.Post("/{championshipID}/phases/{phaseIndex}/groups", h.Championship.AddGroup)
			r.Patch("/{championshipID}/phases/{phaseIndex}/groups/{groupIndex}/rows/{rowIndex}/cells", h.Championship.SetGroupCell)
			r.Put("/{championshipID}/phases/{phaseIndex}/groups/{groupIndex}/rows/{rowIndex}/team", h.Championship.SelectGroupRowTeam)

			r.Post("/{championshipID}/phases/{phaseIndex}/stages", h.Championship.AddStage)
			r.Post("/{championshipID}/phases/{phaseIndex}/stages/{stageIndex}/matchups", h.Championship.AddMatchup)
			r.Put("/{championshipID}/phases/{phaseIndex}/stages/{stageIndex}/matchups/{matchupIndex}/team", h.Championship.SelectMatchupTeam)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{championshipID}", h.Championship.DeleteChampionship)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Match.ListMatches)
		r.Get("/{matchID}", h.Match.GetMatchByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Match.CreateMatch)
			r.Put("/{matchID}", h.Match.UpdateMatch)
			r.Post("/{matchID}/result-sheet", h.Match.UploadResultSheet)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{matchID}", h.Match.DeleteMatch)
		})
	})

	router.Route("/news", func(r chi.Router) {
		r.Get("/", h.News.GetAllNews)
		r.Get("/{newsID}", h.News.GetNewsByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.News.CreateNews)
			r.Put("/{newsID}", h.News.UpdateNews)
			r.Post("/{newsID}/cover", h.News.UploadNewsCover)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{newsID}", h.News.DeleteNews)
		})
	})

	router.Route("/sponsors", func(r chi.Router) {
		r.Get("/", h.Sponsor.GetAllSponsors)
		r.Get("/{sponsorID}", h.Sponsor.GetSponsorByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.Sponsor.CreateSponsor)
			r.Put("/{sponsorID}", h.Sponsor.UpdateSponsor)
			r.Post("/{sponsorID}/logo", h.Sponsor.UploadSponsorLogo)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{sponsorID}", h.Sponsor.DeleteSponsor)
		})
	})

	router.Route("/history", func(r chi.Router) {
		r.Get("/", h.History.GetAllRecords)
		r.Get("/{recordID}", h.History.GetRecordByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/", h.History.CreateRecord)
			r.Put("/{recordID}", h.History.UpdateRecord)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Delete("/{recordID}", h.History.DeleteRecord)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticated, staffOnly)
		r.Get("/dashboard/stats", h.Dashboard.GetStats)
	})
}
