package main

import (
	"errors"
	"fmt"

	"github.com/peridot-quant/pq-api/cmd"

	"github.com/spf13/viper"
)

func configureViper() {
	// read config file
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath("/etc/peridot-quant/")
	viper.AddConfigPath("$HOME/.config/peridot-quant")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		// the config file is optional; everything can be set with flags or
		// environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}
}

func main() {
	configureViper()
	cmd.Execute()
}
