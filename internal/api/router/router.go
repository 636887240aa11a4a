package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/api/handler"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/api/middleware"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/model"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/jwt"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/redis"
)

// Setup initialise et retourne le moteur de routes Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware globaux ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Contrôle de disponibilité ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Authentification (sans token)
		auth := v1.Group("/auth")
		{
			auth.POST("/login",
				middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
				h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Routes authentifiées
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// Charge d'enseignement
			workload := authorized.Group("/workload")
			{
				workload.GET("/me", h.Workload.MyWorkload)
				workload.GET("", middleware.RoleAuth(model.RoleAdmin), h.Workload.Overview)
			}

			// Consultation de l'EDT
			timetable := authorized.Group("/timetable")
			{
				timetable.GET("/me", h.Catalog.MyTimetable)
				timetable.GET("/subjects", h.Catalog.Subjects)
				timetable.GET("/promotions", h.Catalog.Promotions)
			}

			// Listes étudiants
			roster := authorized.Group("/roster")
			{
				roster.GET("/students", h.Catalog.Students)
				roster.GET("/groups", h.Catalog.Groups)
				roster.GET("/subgroups", h.Catalog.Subgroups)
			}

			// Comptes rendus de séance
			reports := authorized.Group("/reports")
			{
				reports.POST("", h.Report.Submit)
				reports.GET("/me", h.Report.ListMine)
			}

			// Exports
			export := authorized.Group("/export")
			{
				export.GET("/workload.xlsx", h.Export.WorkloadSheet)
				export.GET("/timetable.ics", h.Export.TimetableICS)
			}

			// Administration des comptes
			accounts := authorized.Group("/accounts")
			accounts.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				accounts.GET("", h.Account.List)
				accounts.PUT("/:id/reduced-load", h.Account.SetReducedLoad)
			}
		}
	}

	return r
}
