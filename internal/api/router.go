package api

import (
	"github.com/Mrguru2024/IncomeIntelligence-sub004/docs"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/api/handlers"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/auth"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Limit        *handlers.LimitHandler
	Spending     *handlers.SpendingHandler
	Reflection   *handlers.ReflectionHandler
	Challenge    *handlers.ChallengeHandler
	Gamification *handlers.GamificationHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Put("/profile", h.Profile.UpdateProfile)
	protected.Get("/profile", h.Profile.GetProfile)

	limits := protected.Group("/limits")
	limits.Post("", h.Limit.SetLimit)
	limits.Get("", h.Limit.ListLimits)
	limits.Delete("/:id", h.Limit.RemoveLimit)

	spending := protected.Group("/spending")
	spending.Post("", h.Spending.LogSpending)
	spending.Get("", h.Spending.ListSpending)
	spending.Get("/summary", h.Spending.GetSummary)

	reflections := protected.Group("/reflections")
	reflections.Post("", h.Reflection.UpsertWeekly)
	reflections.Get("", h.Reflection.ListRecent)

	challenges := protected.Group("/challenges")
	challenges.Post("/generate", h.Challenge.Generate)
	challenges.Get("", h.Challenge.List)
	challenges.Get("/:id", h.Challenge.Get)
	challenges.Post("/:id/contribute", h.Challenge.Contribute)

	protected.Get("/achievements/level", h.Gamification.GetLevel)
	protected.Get("/leaderboard", h.Gamification.GetLeaderboard)

	return app
}
