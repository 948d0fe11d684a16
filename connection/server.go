package connection

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mustafagenc/planly/config"
	"github.com/mustafagenc/planly/controller/auth"
	"github.com/mustafagenc/planly/controller/board"
	"github.com/mustafagenc/planly/controller/definition"
	"github.com/mustafagenc/planly/controller/report"
	"github.com/mustafagenc/planly/controller/setting"
	"github.com/mustafagenc/planly/controller/task"
	"github.com/mustafagenc/planly/controller/user"
	"github.com/mustafagenc/planly/controller/worklog"
	"github.com/mustafagenc/planly/services"
	"github.com/mustafagenc/planly/store"
)

func init() {
	binding.Validator = services.BindingValidator{}
}

// NewTokenIssuer builds the issuer for the configured secrets and lifetimes.
func NewTokenIssuer(cfg config.Auth) *services.TokenIssuer {
	return services.NewTokenIssuer(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL.Duration, cfg.RefreshTTL.Duration)
}

// NewAuthService wires authentication for both the router and the CLI.
func NewAuthService(cfg config.Auth, st store.Store) *services.AuthService {
	return services.NewAuthService(st, NewTokenIssuer(cfg), services.AuthOptions{
		AllowRegistration: cfg.AllowRegistration,
		BcryptCost:        cfg.BcryptCost,
	})
}

// NewRouter registers every route on a fresh engine backed by st.
func NewRouter(cfg *config.Config, st store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if len(cfg.Server.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
		corsConfig.AddAllowHeaders("Authorization")
		router.Use(cors.New(corsConfig))
	} else {
		router.Use(cors.Default())
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})

	tokens := NewTokenIssuer(cfg.Auth)
	authService := NewAuthService(cfg.Auth, st)
	taskService := services.NewTaskService(st, st)

	auth.SignUpController(router, authService)
	auth.SignInController(router, authService, tokens)
	user.UserController(router, services.NewUserService(st, st, cfg.Auth.BcryptCost), tokens)
	board.BoardController(router, taskService, tokens)
	task.TaskController(router, taskService, tokens)
	worklog.WorkLogController(router, services.NewWorkLogService(st), tokens)
	definition.DefinitionController(router, services.NewDefinitionService(st), tokens)
	setting.SettingController(router, services.NewSettingService(st), tokens)
	report.ReportController(router, services.NewReportService(st), tokens)

	return router
}

// StartServer serves the API until ctx is cancelled, then drains in-flight
// requests.
func StartServer(ctx context.Context, cfg *config.Config) error {
	if err := cfg.RequireSecrets(); err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	st, err := OpenStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: NewRouter(cfg, st),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Println("shutting down")
	return srv.Shutdown(shutdownCtx)
}
