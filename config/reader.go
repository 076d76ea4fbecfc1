package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/xenartist/memo-token/keeper"
)

const AppVersion = "0.1.0"

type Configuration struct {
	Keeper *keeper.Configuration `toml:"keeper"`
	Dev    *DevConfig            `toml:"dev"`
}

func ReadConfiguration(path string) (*Configuration, error) {
	if strings.HasPrefix(path, "~/") {
		usr, _ := user.Current()
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	err = toml.Unmarshal(f, &conf)
	return &conf, err
}
