package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"resto-pos/internal/config"
	"resto-pos/internal/connections/rabbitmq"
	"resto-pos/internal/dashboard"
	"resto-pos/internal/domain"
	"resto-pos/internal/logger"
	"resto-pos/internal/pos/push"
	"resto-pos/internal/pos/rest"
	"resto-pos/internal/pos/session"
	"resto-pos/internal/server"
)

func main() {
	mode := flag.String("mode", "", "api-server | admin | waiter | kitchen")
	cfgPath := flag.String("config", "", "path to YAML config (default $RESTO_CONFIG or config.yaml)")
	email := flag.String("email", "", "dashboard login email (prompted when empty)")
	password := flag.String("password", "", "dashboard login password (prompted when empty)")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}

	switch *mode {
	case "api-server":
		lg.Info("service_started", map[string]any{"service": "api-server", "port": cfg.HTTP.Port})
		if err := server.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "admin", "waiter", "kitchen":
		if err := runDashboard(ctx, cfg, domain.Role(*mode), *email, *password, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: api-server | admin | waiter | kitchen")
		os.Exit(2)
	}
}

func runDashboard(ctx context.Context, cfg config.Config, role domain.Role, email, password string, lg *logger.Logger) error {
	client := rest.NewClient(cfg.Client.BaseURL)

	if email == "" {
		email = prompt("email: ")
	}
	if password == "" {
		password = prompt("password: ")
	}
	sess, err := session.Login(ctx, client, email, password)
	if err != nil {
		return err
	}
	if sess.Role() != role {
		return fmt.Errorf("user %s has role %s, not %s", sess.User.Email, sess.Role(), role)
	}
	client.SetToken(sess.Token)

	// One broker connection per process; every view in this dashboard
	// shares it and only ever detaches its own handlers.
	rmq, err := rabbitmq.Dial(cfg.Rabbit)
	if err != nil {
		return fmt.Errorf("rabbitmq: %w", err)
	}
	defer rmq.Close()
	ch, err := push.NewAMQP(rmq, string(role)+"-dashboard", lg)
	if err != nil {
		return fmt.Errorf("push channel: %w", err)
	}

	deps := dashboard.Deps{Client: client, Push: ch, Session: sess, Logger: logger.New(string(role) + "-dashboard")}
	switch role {
	case domain.RoleAdmin:
		return dashboard.RunAdmin(ctx, deps)
	case domain.RoleWaiter:
		return dashboard.RunWaiter(ctx, deps)
	case domain.RoleKitchen:
		return dashboard.RunKitchen(ctx, deps)
	}
	return fmt.Errorf("no dashboard for role %s", role)
}

func prompt(label string) string {
	fmt.Print(label)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}
