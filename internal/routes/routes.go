package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lockedin/lockedin-api/internal/handlers"
)

func Setup(app *fiber.App, goals *handlers.GoalHandler, streaks *handlers.StreakHandler, engagement *handlers.EngagementHandler, gamification *handlers.GamificationHandler, coach *handlers.CoachHandler) {
	api := app.Group("/api")

	g := api.Group("/goals")
	g.Get("/", goals.List)
	g.Post("/", goals.Create)
	g.Get("/:id", goals.Get)
	g.Put("/:id", goals.Update)
	g.Delete("/:id", goals.Delete)

	s := api.Group("/streaks")
	s.Get("/:goalId", streaks.Get)
	s.Post("/:goalId/complete", streaks.CompleteToday)

	api.Get("/completions/:goalId", streaks.ListCompletions)

	st := api.Group("/screen-time")
	st.Get("/today/:goalId", engagement.TodayScreenTime)
	st.Get("/:goalId", engagement.ListScreenTime)
	st.Post("/:goalId", engagement.CreateScreenTime)

	ms := api.Group("/micro-sessions")
	ms.Get("/:goalId", engagement.ListMicroSessions)
	ms.Post("/:goalId", engagement.CreateMicroSession)

	fs := api.Group("/focus-sessions")
	fs.Get("/:goalId", engagement.ListFocusSessions)
	fs.Post("/:goalId", engagement.CreateFocusSession)
	fs.Put("/:sessionId", engagement.UpdateFocusSession)

	r := api.Group("/rewards")
	r.Get("/:goalId", gamification.ListRewards)
	r.Post("/:rewardId/claim", gamification.ClaimReward)
	r.Post("/:goalId", gamification.CreateReward)

	api.Get("/leaderboard", gamification.GetLeaderboard)
	api.Post("/leaderboard", gamification.UpsertLeaderboard)

	sm := api.Group("/shame-metrics")
	sm.Get("/:goalId", gamification.GetShameMetrics)
	sm.Put("/:goalId", gamification.UpdateShameMetrics)

	api.Post("/coach", coach.Respond)
}
