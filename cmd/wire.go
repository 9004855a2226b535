package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/skillconnect-cli/internal/adapters/api"
	feedadapter "github.com/bnema/skillconnect-cli/internal/adapters/render/feed"
	tomlrepo "github.com/bnema/skillconnect-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/skillconnect-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/skillconnect-cli/internal/adapters/secrets/file"
	"github.com/bnema/skillconnect-cli/internal/adapters/upload/fsstore"
	"github.com/bnema/skillconnect-cli/internal/adapters/upload/httpstore"
	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/bnema/skillconnect-cli/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	configDirName = ".skillconnect"
	envPrefix     = "SC"

	keyAPIBaseURL          = "api.base_url"
	keyAPITimeout          = "api.timeout"
	keyInvalidateOn401     = "session.invalidate_on_unauthorized"
	keySecretsBackend      = "secrets.backend"
	keySecretsDir          = "secrets.dir"
	keyListsOrder          = "lists.order"
	keyUploadEndpoint      = "upload.endpoint"
	keyUploadDir           = "upload.dir"
	keyUploadPublicBaseURL = "upload.public_base_url"
	keyAuthListen          = "auth.listen"
	keyAuthTimeout         = "auth.timeout"
	keyLogLevel            = "log.level"
)

type app struct {
	cfg           *viper.Viper
	logger        *slog.Logger
	logLevel      *slog.LevelVar
	client        *api.Client
	session       *application.SessionState
	authService   *application.AuthService
	profiles      *application.ProfileService
	follows       *application.FollowService
	likes         *application.LikeService
	notifications *application.NotificationService
	uploader      *application.Uploader
	order         application.OrderPolicy
	renderOptions func() feedadapter.RenderOptions
	redirectLogin redirectLoginConfig
	now           func() time.Time
}

type redirectLoginConfig struct {
	ListenAddr string
	Timeout    time.Duration
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	logLevel := new(slog.LevelVar)
	if err := logLevel.UnmarshalText([]byte(cfg.GetString(keyLogLevel))); err != nil {
		return nil, fmt.Errorf("parse %s: %w", keyLogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	order, err := application.ParseOrderPolicy(cfg.GetString(keyListsOrder))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", keyListsOrder, err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	secretStore, err := wireSecretStore(cfg)
	if err != nil {
		return nil, err
	}

	session := application.NewSessionState(repo, secretStore,
		application.WithSessionWatcher(repo),
		application.WithSessionLogger(logger),
	)
	if _, err := session.Sync(context.Background()); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	client := &api.Client{
		BaseURL:        cfg.GetString(keyAPIBaseURL),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.GetDuration(keyAPITimeout),
		UserAgent:      "sc/" + version.Version,
		Session:        session,
		Logger:         logger,
	}
	if cfg.GetBool(keyInvalidateOn401) {
		client.OnUnauthorized = func(ctx context.Context) {
			if err := session.Clear(ctx); err != nil {
				logger.Warn("clear session after unauthorized response", "err", err)
			}
		}
	}

	uploader := application.NewUploader(wireObjectStore(cfg, session), ports.SystemClock{})

	a := &app{
		cfg:           cfg,
		logger:        logger,
		logLevel:      logLevel,
		client:        client,
		session:       session,
		authService:   application.NewAuthService(client, session),
		profiles:      application.NewProfileService(client, client, client, uploader, session, order),
		follows:       application.NewFollowService(client, session),
		likes:         application.NewLikeService(client, session, order),
		notifications: application.NewNotificationService(client, session),
		uploader:      uploader,
		order:         order,
		redirectLogin: redirectLoginConfig{
			ListenAddr: cfg.GetString(keyAuthListen),
			Timeout:    cfg.GetDuration(keyAuthTimeout),
		},
		now: time.Now,
	}
	a.renderOptions = func() feedadapter.RenderOptions {
		return feedadapter.RenderOptions{Now: a.now(), Viewer: a.session.Get().UserID}
	}

	return a, nil
}

func loadConfig(configDir string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyAPIBaseURL, "http://localhost:8080/api")
	cfg.SetDefault(keyAPITimeout, 30*time.Second)
	cfg.SetDefault(tomlrepo.SessionPathKey, filepath.Join(configDir, "session.toml"))
	cfg.SetDefault(keyInvalidateOn401, false)
	cfg.SetDefault(keySecretsBackend, "auto")
	cfg.SetDefault(keySecretsDir, filepath.Join(configDir, "secrets"))
	cfg.SetDefault(keyListsOrder, string(application.OrderReverse))
	cfg.SetDefault(keyUploadEndpoint, "")
	cfg.SetDefault(keyUploadDir, filepath.Join(configDir, "uploads"))
	cfg.SetDefault(keyUploadPublicBaseURL, "")
	cfg.SetDefault(keyAuthListen, "127.0.0.1:0")
	cfg.SetDefault(keyAuthTimeout, 5*time.Minute)
	cfg.SetDefault(keyLogLevel, "warn")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}

func wireSecretStore(cfg *viper.Viper) (ports.SecretStore, error) {
	dir := cfg.GetString(keySecretsDir)

	switch backend := cfg.GetString(keySecretsBackend); backend {
	case "file":
		return filestore.NewStore(dir), nil
	case "auto", "":
		return chainstore.NewPassWithFileFallback(dir), nil
	default:
		return nil, fmt.Errorf("unsupported %s %q (want auto or file)", keySecretsBackend, backend)
	}
}

// wireObjectStore uploads to the configured HTTP endpoint, or to a local
// directory when none is set.
func wireObjectStore(cfg *viper.Viper, session *application.SessionState) ports.ObjectStore {
	if endpoint := cfg.GetString(keyUploadEndpoint); endpoint != "" {
		return &httpstore.Store{
			Endpoint:       endpoint,
			HTTPClient:     http.DefaultClient,
			RequestTimeout: cfg.GetDuration(keyAPITimeout),
			Token: func() string {
				return session.Get().AuthToken
			},
		}
	}

	return fsstore.NewStore(afero.NewOsFs(), cfg.GetString(keyUploadDir), cfg.GetString(keyUploadPublicBaseURL))
}
