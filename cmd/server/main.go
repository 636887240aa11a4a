package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/api/handler"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/api/router"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/catalog"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/repository"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/database"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/jwt"
	applogger "github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/logger"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/mailer"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/redis"
)

func main() {
	// 1. Chargement de la configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "échec du chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialisation du logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "échec de l'initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage de l'application...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Chargement des sources tabulaires (EDT et listes étudiants).
	// Les index sont immuables après chargement : toute mise à jour des
	// fichiers sources exige un redémarrage.
	edt, err := catalog.LoadTimetableIndex(cfg.Catalog.TimetablePath)
	if err != nil {
		logger.Fatal("échec du chargement de l'emploi du temps", zap.Error(err))
	}
	logger.Info("emploi du temps chargé",
		zap.String("path", cfg.Catalog.TimetablePath),
		zap.Int("entries", edt.Len()),
	)

	roster, err := catalog.LoadRosterIndex(cfg.Catalog.RosterPath)
	if err != nil {
		logger.Fatal("échec du chargement des listes étudiants", zap.Error(err))
	}
	logger.Info("listes étudiants chargées",
		zap.String("path", cfg.Catalog.RosterPath),
		zap.Int("students", roster.Len()),
	)

	// 4. Connexion à la base de données
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("échec de la connexion à la base de données", zap.Error(err))
	}
	logger.Info("connexion à la base de données établie")

	// 4.1 Migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("échec de l'accès au sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("échec des migrations", zap.Error(err))
	}

	// 5. Connexion Redis (optionnelle : en cas d'échec le service démarre en
	// mode dégradé, sans liste noire de tokens ni limitation de débit)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("connexion Redis impossible, liste noire et limitation de débit désactivées", zap.Error(err))
		rdb = nil
	}

	// 6. Gestionnaire JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. Canal de remise des comptes rendus. NewSMTPSender retourne nil quand
	// le SMTP n'est pas configuré ; l'interface ne doit être affectée que si
	// l'émetteur est non nil, sinon le dispatcher verrait une interface non
	// nulle portant un pointeur nil.
	var sender mailer.Sender
	if s := mailer.NewSMTPSender(&cfg.Mail, logger); s != nil {
		sender = s
	} else {
		logger.Warn("SMTP non configuré, la remise des comptes rendus sera marquée en échec")
	}
	dispatcher := service.NewMailDispatcher(sender, cfg.Mail.Recipient, logger)

	// 8. Injection des dépendances : Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, edt, roster, repo, jwtMgr, rdb, dispatcher, logger)
	h := handler.NewHandler(svc)

	// 9. Routage
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 10. Serveur HTTP avec arrêt en douceur
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("erreur du serveur HTTP", zap.Error(err))
		}
	}()

	// 11. Attente d'un signal d'arrêt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal d'arrêt reçu, arrêt en douceur...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("erreur lors de l'arrêt du serveur", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
