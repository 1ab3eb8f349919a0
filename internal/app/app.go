package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"homeworkbot/internal/config"
	"homeworkbot/internal/notifier"
	"homeworkbot/internal/poller"
	"homeworkbot/internal/practicum"
	"homeworkbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrMissingTokens is matched by MissingTokensError
var ErrMissingTokens = errors.New("required tokens are missing")

// MissingTokensError lists every required credential that is not set
type MissingTokensError struct {
	Tokens []string
}

func (e *MissingTokensError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingTokens, strings.Join(e.Tokens, ", "))
}

func (e *MissingTokensError) Is(target error) bool {
	return target == ErrMissingTokens
}

// App wires configuration, API client, notifier and poller together
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	poller *poller.Poller
}

// New checks credentials and builds all components. Missing tokens are logged
// one per line and returned as *MissingTokensError for the fatal exit.
// Nothing touches the network until Run is called.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if missing := cfg.MissingTokens(); len(missing) > 0 {
		for _, name := range missing {
			log.Error("Токен отсутствует", zap.String("token", name))
		}
		return nil, &MissingTokensError{Tokens: missing}
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.TelegramToken,
		Client:  httpClient,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	client := practicum.NewClient(httpClient, cfg.Endpoint, cfg.PracticumToken, log)
	telegram := notifier.NewTelegram(bot, cfg.TelegramChatID, log)
	homework := service.NewHomeworkService(log)

	return &App{
		cfg:    cfg,
		log:    log,
		poller: poller.New(client, homework, telegram, log, cfg.RetryPeriod),
	}, nil
}

// Run polls until SIGINT/SIGTERM or ctx cancellation
func (a *App) Run(ctx context.Context) error {
	a.log.Info("Starting homework bot",
		zap.String("endpoint", a.cfg.Endpoint),
		zap.Duration("retry_period", a.cfg.RetryPeriod),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.poller.Run(ctx); err != nil {
		return err
	}

	a.log.Info("Homework bot stopped")
	return nil
}
