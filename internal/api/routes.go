package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")
	api.Post("/language", handler.SetLanguage)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUser)

	welcome := api.Group("/welcome")
	welcome.Get("", handler.WelcomeStatus)
	welcome.Post("/dismiss", handler.DismissWelcome)

	api.Get("/timeline", handler.AuthRequired, handler.Timeline)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("/:date/exists", handler.DayExists)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)
	days.Delete("/:date/:type", handler.DeleteDayAnswer)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/profile", handler.UpdateProfile)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Delete("/delete-account", handler.DeleteAccount)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
