package router

import (
	"net/http"

	acctsvc "casavia-backend/internal/application/accounts"
	authsvc "casavia-backend/internal/application/auth"
	msgsvc "casavia-backend/internal/application/messages"
	offersvc "casavia-backend/internal/application/offers"
	propsvc "casavia-backend/internal/application/properties"
	searchsvc "casavia-backend/internal/application/search"
	viewsvc "casavia-backend/internal/application/viewings"
	"casavia-backend/internal/config"
	"casavia-backend/internal/constants"
	"casavia-backend/internal/infrastructure/database"
	"casavia-backend/internal/infrastructure/registry"
	accthandler "casavia-backend/internal/interfaces/handlers/accounts"
	authhandler "casavia-backend/internal/interfaces/handlers/auth"
	healthhandler "casavia-backend/internal/interfaces/handlers/health"
	msghandler "casavia-backend/internal/interfaces/handlers/messages"
	offerhandler "casavia-backend/internal/interfaces/handlers/offers"
	prophandler "casavia-backend/internal/interfaces/handlers/properties"
	searchhandler "casavia-backend/internal/interfaces/handlers/search"
	viewhandler "casavia-backend/internal/interfaces/handlers/viewings"
	"casavia-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionHandler, redisClient, err := middleware.Session(middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	})
	if err != nil {
		return nil, nil, nil, err
	}
	rdb := redisClient
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.ResponseFormatter())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             nil,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		hh.DB = &gormDBPinger{db: db}
	}

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}

	var accountFinder authsvc.AccountFinder
	if db != nil {
		accountFinder = &authsvc.GormAccountFinder{DB: db}
	}
	ah := &authhandler.Handlers{
		AccountFinder: accountFinder,
		Rdb:           rdb,
		Config:        sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", ah.Login)
	authGroup.Get("/me", ah.Me)
	authGroup.Delete("/logout", ah.Logout)

	if db != nil && rdb != nil {
		reg := registry.New()

		// Accounts (registration is public)
		as := &acctsvc.Service{DB: db, Reg: reg}
		acch := &accthandler.Handlers{Service: as}
		app.Post("/api/v1/accounts/register-buyer", acch.RegisterBuyer)
		app.Post("/api/v1/accounts/register-seller", acch.RegisterSeller)
		ag := app.Group("/api/v1/accounts", middleware.RequireAuth())
		ag.Get("/view-account/:user_id", acch.ViewAccount)
		ag.Put("/update-profile", acch.UpdateProfile)
		ag.Put("/change-password", acch.ChangePassword)

		// Properties
		ps := &propsvc.Service{Reg: reg, DB: db}
		ph := &prophandler.Handlers{Service: ps}
		pg := app.Group("/api/v1/properties", middleware.RequireAuth())
		pg.Post("/create-property", middleware.AuthorizePermission(constants.CreateProperty), ph.CreateProperty)
		pg.Post("/publish-property", middleware.AuthorizePermission(constants.PublishProperty), ph.PublishProperty)
		pg.Post("/suspend-property", middleware.AuthorizePermission(constants.EditProperty), ph.SuspendProperty)
		pg.Post("/close-property", middleware.AuthorizePermission(constants.CloseProperty), ph.CloseProperty)
		pg.Put("/update-details", middleware.AuthorizePermission(constants.EditProperty), ph.UpdateDetails)
		pg.Post("/add-feature", middleware.AuthorizePermission(constants.EditProperty), ph.AddFeature)
		pg.Post("/remove-feature", middleware.AuthorizePermission(constants.EditProperty), ph.RemoveFeature)
		pg.Post("/add-image", middleware.AuthorizePermission(constants.EditProperty), ph.AddImage)
		pg.Post("/remove-image", middleware.AuthorizePermission(constants.EditProperty), ph.RemoveImage)
		pg.Get("/get-property/:property_id", ph.GetProperty)
		pg.Get("/get-seller-properties", ph.GetSellerProperties)

		// Offers
		ofs := &offersvc.Service{Reg: reg}
		ofh := &offerhandler.Handlers{Service: ofs}
		og := app.Group("/api/v1/offers", middleware.RequireAuth())
		og.Post("/place-offer", middleware.AuthorizePermission(constants.PlaceOffer), ofh.PlaceOffer)
		og.Post("/respond-to-offer", middleware.AuthorizePermission(constants.RespondToOffer), ofh.RespondToOffer)
		og.Post("/withdraw-offer", middleware.AuthorizePermission(constants.WithdrawOffer), ofh.WithdrawOffer)
		og.Get("/get-offer/:offer_id", ofh.GetOffer)
		og.Get("/get-received-offers", ofh.GetReceivedOffers)

		// Viewings
		vs := &viewsvc.Service{Reg: reg}
		vh := &viewhandler.Handlers{Service: vs}
		vg := app.Group("/api/v1/viewings", middleware.RequireAuth())
		vg.Post("/request-viewing", middleware.AuthorizePermission(constants.RequestViewing), vh.RequestViewing)
		vg.Post("/confirm-viewing", middleware.AuthorizePermission(constants.ManageViewing), vh.ConfirmViewing)
		vg.Post("/cancel-viewing", middleware.AuthorizePermission(constants.ManageViewing), vh.CancelViewing)
		vg.Post("/complete-viewing", middleware.AuthorizePermission(constants.ManageViewing), vh.CompleteViewing)
		vg.Post("/reschedule-viewing", middleware.AuthorizePermission(constants.ManageViewing), vh.RescheduleViewing)
		vg.Post("/record-feedback", middleware.AuthorizePermission(constants.ManageViewing), vh.RecordFeedback)
		vg.Get("/get-viewing/:viewing_id", vh.GetViewing)

		// Search
		ss := &searchsvc.Service{DB: db}
		sh := &searchhandler.Handlers{Service: ss}
		sg := app.Group("/api/v1/search", middleware.RequireAuth())
		sg.Post("/search-listings", middleware.AuthorizePermission(constants.SearchListings), sh.SearchListings)
		sg.Get("/available-listings", sh.AvailableListings)

		// Messages
		mss := &msgsvc.Service{DB: db}
		mh := &msghandler.Handlers{Service: mss}
		mg := app.Group("/api/v1/messages", middleware.RequireAuth())
		mg.Post("/send-message", middleware.AuthorizePermission(constants.SendMessage), mh.SendMessage)
		mg.Get("/inbox", mh.Inbox)
		mg.Get("/outbox", mh.Outbox)
		mg.Post("/mark-read", mh.MarkRead)
		mg.Get("/unread-count", mh.UnreadCount)
	}

	return app, db, rdb, nil
}

func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
