package config

import (
	"github.com/go-pg/pg/v10"
)

// Config is built once in main from the TOML file and passed explicitly to
// every component that needs a part of it.
type Config struct {
	Database pg.Options
	App      AppConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Host string
	Port int
	// BaseURL is the public base address used to build absolute image URLs.
	BaseURL string
	// UploadDir is the directory uploaded images are written to and served
	// from under /images/.
	UploadDir string
	// NewsKey is the shared secret required to create news.
	NewsKey string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
}
