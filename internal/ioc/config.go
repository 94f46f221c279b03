package ioc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/canada-ca/tracker-sub005/internal/pkg/logger"
	"github.com/canada-ca/tracker-sub005/internal/service/notify"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/gcnotify"
	"github.com/gotomicro/ego/core/econf"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger logger.Config `yaml:"logger"`
	Notify NotifyConfig  `yaml:"notify"`
}

type NotifyConfig struct {
	Templates notify.Templates `yaml:"templates"`
	Client    ClientConfig     `yaml:"client"`
}

// ClientConfig names the client used for each channel: gcnotify or
// console for email, gcnotify, aliyun, tencent or console for SMS. An
// empty name leaves the channel unconfigured.
type ClientConfig struct {
	Email    string         `yaml:"email"`
	SMS      string         `yaml:"sms"`
	GCNotify GCNotifyConfig `yaml:"gcnotify"`
	Aliyun   AliyunConfig   `yaml:"aliyun"`
	Tencent  TencentConfig  `yaml:"tencent"`
	Breaker  BreakerConfig  `yaml:"breaker"`
}

type GCNotifyConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

type AliyunConfig struct {
	RegionID        string `yaml:"regionID"`
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	SignName        string `yaml:"signName"`
}

type TencentConfig struct {
	RegionID  string `yaml:"regionID"`
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	SignName  string `yaml:"signName"`
}

// BreakerConfig tunes the SRE breaker. Zero values keep the breaker's own
// defaults.
type BreakerConfig struct {
	Enabled bool          `yaml:"enabled"`
	Success float64       `yaml:"success"`
	Request int64         `yaml:"request"`
	Window  time.Duration `yaml:"window"`
	Bucket  int           `yaml:"bucket"`
}

func defaultConfig() Config {
	return Config{
		Logger: logger.Config{Env: "dev", Level: "info"},
		Notify: NotifyConfig{
			Templates: notify.DefaultTemplates(),
			Client: ClientConfig{
				Email: "gcnotify",
				SMS:   "gcnotify",
				GCNotify: GCNotifyConfig{
					BaseURL: gcnotify.DefaultBaseURL,
					Timeout: 10 * time.Second,
				},
			},
		},
	}
}

// LoadConfig reads envFile (if it exists) into the environment, loads the
// YAML file at path into econf and then applies environment overrides.
// Either path may be empty.
func LoadConfig(path, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer f.Close()
		if err = econf.LoadFromReader(f, yaml.Unmarshal); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg := defaultConfig()
	if econf.Get("logger") != nil {
		if err := econf.UnmarshalKey("logger", &cfg.Logger); err != nil {
			return Config{}, err
		}
	}
	if econf.Get("notify") != nil {
		if err := econf.UnmarshalKey("notify", &cfg.Notify); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets the deployment environment override ids and secrets.
func applyEnv(cfg *Config) {
	t := &cfg.Notify.Templates
	c := &cfg.Notify.Client
	overrides := []struct {
		env string
		dst *string
	}{
		{"NOTIFICATION_AUTHENTICATE_EMAIL_ID", &t.AuthEmail},
		{"NOTIFICATION_AUTHENTICATE_TEXT_ID", &t.AuthTextMsg},
		{"NOTIFICATION_TWO_FACTOR_AUTH_TEXT_ID", &t.TfaTextMsg},
		{"NOTIFICATION_VERIFICATION_EMAIL_EN", &t.VerificationEmailEN},
		{"NOTIFICATION_VERIFICATION_EMAIL_FR", &t.VerificationEmailFR},
		{"NOTIFICATION_PASSWORD_RESET_EN", &t.PasswordResetEN},
		{"NOTIFICATION_PASSWORD_RESET_FR", &t.PasswordResetFR},
		{"NOTIFICATION_ORG_INVITE_EN", &t.OrgInvite},
		{"NOTIFICATION_ORG_INVITE_CREATE_ACCOUNT_EN", &t.OrgInviteCreateAccountEN},
		{"NOTIFICATION_ORG_INVITE_CREATE_ACCOUNT_FR", &t.OrgInviteCreateAccountFR},
		{"NOTIFICATION_API_KEY", &c.GCNotify.APIKey},
		{"NOTIFICATION_API_URL", &c.GCNotify.BaseURL},
		{"ALIYUN_ACCESS_KEY_ID", &c.Aliyun.AccessKeyID},
		{"ALIYUN_ACCESS_KEY_SECRET", &c.Aliyun.AccessKeySecret},
		{"TENCENT_SECRET_ID", &c.Tencent.SecretID},
		{"TENCENT_SECRET_KEY", &c.Tencent.SecretKey},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.dst = v
		}
	}
}

// CheckTemplates reports every template id that is not configured. The
// dispatcher does not need them up front, so callers only warn.
func CheckTemplates(t notify.Templates) error {
	var err error
	for _, name := range t.Missing() {
		err = multierror.Append(err, fmt.Errorf("template %s is not configured", name))
	}
	return err
}
