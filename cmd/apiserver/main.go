package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/apiserver/handler"
	"github.com/distrilink/fieldsales/internal/apiserver/middleware"
	"github.com/distrilink/fieldsales/internal/auth/jwt"
	"github.com/distrilink/fieldsales/internal/common/config"
	"github.com/distrilink/fieldsales/pkg/logger"
	"github.com/distrilink/fieldsales/pkg/metrics"
	"github.com/distrilink/fieldsales/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Field Sales API Server",
		Long:  `Field Sales API Server provides the distributor sales backend: accounts, products, orders, feedback and sales targets`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "configs/apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

// seedRoles makes sure the two built-in roles exist.
func seedRoles(ctx context.Context, db database.Database, lg *zap.Logger) error {
	for _, name := range []string{database.RoleAdmin, database.RoleCustomer} {
		if _, err := db.GetRoleByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, database.ErrNotFound) {
			return err
		}
		if err := db.CreateRole(ctx, &database.Role{RoleName: name}); err != nil {
			return err
		}
		lg.Info("created role", zap.String("role", name))
	}
	return nil
}

// seedSuperAdmin creates the configured administrator account on first boot.
func seedSuperAdmin(ctx context.Context, db database.Database, cfg *config.SuperAdminConfig, lg *zap.Logger) error {
	if cfg.Username == "" || cfg.Password == "" {
		lg.Warn("super admin not configured, skipping seed")
		return nil
	}

	if _, err := db.GetUserByUsername(ctx, cfg.Username); err == nil {
		return nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	role, err := db.GetRoleByName(ctx, database.RoleAdmin)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &database.User{
		Username: cfg.Username,
		FullName: "Super Admin",
		Password: string(hashed),
		RoleID:   role.ID,
		IsActive: true,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil
		}
		return err
	}
	lg.Info("created super admin user", zap.String("username", cfg.Username))
	return nil
}

func run() {
	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = lg.Sync()
	}()

	lg.Info("Starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		lg.Fatal("Failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := seedRoles(ctx, db, lg); err != nil {
		lg.Fatal("Failed to seed roles", zap.Error(err))
	}
	if err := seedSuperAdmin(ctx, db, &cfg.SuperAdmin, lg); err != nil {
		lg.Fatal("Failed to seed super admin", zap.Error(err))
	}

	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		lg.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	m := metrics.New(cfg.Metrics)
	r.Use(m.GinMiddleware())
	r.GET("/metrics", gin.WrapH(m.Handler()))

	h := handler.NewHandler(db, jwtService, lg)
	h.RegisterRoutes(r)

	port := cfg.Port
	if port == 0 {
		port = 5566
	}

	lg.Info("Server starting", zap.Int("port", port))
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		lg.Fatal("Server exited", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
