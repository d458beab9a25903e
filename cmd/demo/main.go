// Package main implements a small demonstration binary for servicekit.
// It loads configuration, sets up logging, and runs the example operations
// end to end: registering a user and authenticating against the stored hash.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phrazzld/servicekit"
	"github.com/phrazzld/servicekit/internal/config"
	"github.com/phrazzld/servicekit/internal/domain"
	"github.com/phrazzld/servicekit/internal/ops"
	"github.com/phrazzld/servicekit/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

// run loads configuration, configures logging, and executes the demo
// operations. It returns an error instead of exiting so main owns the
// process exit.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("demo configuration loaded",
		"log_level", cfg.Logging.Level,
		"demo_email", cfg.Demo.Email)

	// Register a user through the CreateUser service object.
	createSvc, err := servicekit.New(&ops.CreateUser{Params: ops.CreateUserParams{
		Email:    cfg.Demo.Email,
		Password: cfg.Demo.Password,
	}})
	if err != nil {
		return err
	}

	result := createSvc.Result()
	if !createSvc.Success() {
		reportFailure(createSvc, "user creation")
		return fmt.Errorf("user creation did not succeed")
	}

	user := result.(*domain.User)
	appLogger.Info("user created",
		"user_id", user.ID,
		"email", user.Email,
		"status", createSvc.Status())

	// Authenticate with the password the user registered with.
	authSvc, err := servicekit.New(&ops.AuthenticateUser{
		User:     user,
		Password: cfg.Demo.Password,
	})
	if err != nil {
		return err
	}

	authSvc.Run()
	if !authSvc.Success() {
		reportFailure(authSvc, "authentication")
		return fmt.Errorf("authentication did not succeed")
	}

	appLogger.Info("user authenticated", "user_id", user.ID, "status", authSvc.Status())
	fmt.Printf("demo complete: user %s registered and authenticated\n", user.Email)

	return nil
}

// reportFailure prints every error record left by a failed service run.
func reportFailure(svc *servicekit.Service, operation string) {
	records, err := svc.Errors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed and its error list is malformed: %v\n", operation, err)
		return
	}

	fmt.Fprintf(os.Stderr, "%s failed with %d error(s):\n", operation, len(records))
	for _, r := range records {
		if r.Kind != "" {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", r.Kind, r.Message)
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s\n", r.Message)
	}
}
