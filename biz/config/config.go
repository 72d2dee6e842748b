package config

import (
	"os"
	"path/filepath"
	"strings"

	"bankdemo/biz/model/mode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that take precedence over the yaml file.
const (
	EnvSecurityMode  = "SECURITY_MODE"
	EnvDBPassword    = "DB_PASSWORD"
	EnvSessionSecret = "SESSION_SECRET"
	EnvServerAddr    = "SERVER_ADDR"
)

const defaultSessionSecret = "dev-secret-change-me"

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(err)
	}

	loadDotEnv(filepath)
	applyEnv(&conf)
	globalConfig = conf

	if globalConfig.securityMode() == mode.Secure && GetSessionConf().Secret == defaultSessionSecret {
		hlog.Warnf("session secret is using the default value, set %s", EnvSessionSecret)
	}
	hlog.Debugf("config loaded, security_mode=%s", globalConfig.securityMode())
}

// loadDotEnv reads a .env next to the config file and one in the working
// directory. Variables already set in the process environment win.
func loadDotEnv(confPath string) {
	candidates := []string{
		filepath.Join(filepath.Dir(confPath), ".env"),
		".env",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			hlog.Warnf("load %s err: %v", p, err)
		}
	}
}

func applyEnv(conf *ServiceConf) {
	if v, ok := os.LookupEnv(EnvSecurityMode); ok {
		conf.SecurityMode = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		conf.MySQL.Password = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSessionSecret)); v != "" {
		conf.Session.Secret = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvServerAddr)); v != "" {
		conf.Server.Addr = v
	}
}

func GetServerConf() ServerConf {
	conf := globalConfig.Server
	if conf.Addr == "" {
		conf.Addr = ":3000"
	}
	return conf
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

// GetJWTConfig falls back to the session secret when no dedicated signing
// secret is configured.
func GetJWTConfig() JWTConf {
	conf := globalConfig.JWT
	if conf.AccessTokenSecret == "" {
		conf.AccessTokenSecret = GetSessionConf().Secret
	}
	return conf
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetSessionConf() SessionConf {
	conf := globalConfig.Session
	if conf.Secret == "" {
		conf.Secret = defaultSessionSecret
	}
	return conf
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

// GetSecurityMode is read at every query construction site so a runtime
// toggle only has to swap the config value.
func GetSecurityMode() mode.Mode {
	return globalConfig.securityMode()
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server       ServerConf  `yaml:"server"`
	SecurityMode string      `yaml:"security_mode"`
	MySQL        MySQLConf   `yaml:"mysql"`
	Redis        RedisConf   `yaml:"redis"`
	JWT          JWTConf     `yaml:"jwt"`
	CORS         CORSConf    `yaml:"cors"`
	Session      SessionConf `yaml:"session"`
	Logger       LoggerConf  `yaml:"logger"`
}

func (c ServiceConf) securityMode() mode.Mode {
	return mode.Parse(c.SecurityMode)
}

type ServerConf struct {
	Addr string `yaml:"addr"`
}

type MySQLConf struct {
	DBName    string `yaml:"db_name"`
	IP        string `yaml:"ip"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	PoolLimit int    `yaml:"pool_limit"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConf struct {
	Issuer string `yaml:"issuer"`

	AccessTokenSecret string `yaml:"access_token_secret"`
	AccessExpiration  int    `yaml:"access_expiration"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type SessionConf struct {
	StorePrefix string `yaml:"store_prefix"`
	TokenPrefix string `yaml:"token_prefix"`
	Secret      string `yaml:"secret"`
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	Domain      string `yaml:"domain"`
	MaxAge      int    `yaml:"max_age"`
	Secure      bool   `yaml:"secure"`
	HTTPOnly    bool   `yaml:"http_only"`
	SameSite    string `yaml:"same_site"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}
