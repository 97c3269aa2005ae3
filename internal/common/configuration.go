/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package common provides configuration management, database initialization,
// and HTTP endpoint utilities for the DPP Go components. It includes support
// for YAML configuration files, environment variable overrides, CORS setup,
// health endpoints, and PostgreSQL database connections with connection pooling.
package common

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete configuration for the DPP service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Postgres  PostgresConfig  `mapstructure:"postgres" yaml:"postgres"`
	Mongo     MongoConfig     `mapstructure:"mongo" yaml:"mongo"`
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates"`
	Cors      CorsConfig      `mapstructure:"cors" yaml:"cors"`
}

// ServerConfig contains HTTP server parameters.
type ServerConfig struct {
	Port        int    `mapstructure:"port" yaml:"port"`
	ContextPath string `mapstructure:"contextPath" yaml:"contextPath"`
}

// PostgresConfig contains PostgreSQL connection parameters, including
// pooling settings.
type PostgresConfig struct {
	Host                   string `mapstructure:"host" yaml:"host"`
	Port                   int    `mapstructure:"port" yaml:"port"`
	User                   string `mapstructure:"user" yaml:"user"`
	Password               string `mapstructure:"password" yaml:"password"`
	DBName                 string `mapstructure:"dbname" yaml:"dbname"`
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" yaml:"maxOpenConnections"`
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" yaml:"maxIdleConnections"`
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" yaml:"connMaxLifetimeMinutes"`
}

// DSN renders the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DBName)
}

// MongoConfig selects the optional MongoDB document backend. When Enabled
// is false the service runs on PostgreSQL.
type MongoConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	URI      string `mapstructure:"uri" yaml:"uri"`
	Database string `mapstructure:"database" yaml:"database"`
}

// TemplatesConfig locates the submodel template catalog on disk.
type TemplatesConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// CorsConfig contains the CORS policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" yaml:"allowedOrigins"`
	AllowedMethods   []string `mapstructure:"allowedMethods" yaml:"allowedMethods"`
	AllowedHeaders   []string `mapstructure:"allowedHeaders" yaml:"allowedHeaders"`
	AllowCredentials bool     `mapstructure:"allowCredentials" yaml:"allowCredentials"`
}

// LoadConfig loads the configuration from a YAML file and environment
// variables. Environment variables take precedence over the file, which
// takes precedence over defaults; they use underscore notation
// (SERVER_PORT for server.port).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		log.Printf("Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("No config file provided - loading from environment variables only")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5010)
	v.SetDefault("server.contextPath", "")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "admin")
	v.SetDefault("postgres.password", "admin")
	v.SetDefault("postgres.dbname", "dpp_db")
	v.SetDefault("postgres.maxOpenConnections", 50)
	v.SetDefault("postgres.maxIdleConnections", 10)
	v.SetDefault("postgres.connMaxLifetimeMinutes", 5)

	v.SetDefault("mongo.enabled", false)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "dpp_db")

	v.SetDefault("templates.dir", "templates")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type"})
	v.SetDefault("cors.allowCredentials", false)
}

// PrintConfiguration logs the effective configuration with the database
// password masked.
func PrintConfiguration(cfg *Config) {
	log.Printf("Server:    port=%d contextPath=%q", cfg.Server.Port, cfg.Server.ContextPath)
	log.Printf("Postgres:  host=%s port=%d dbname=%s user=%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName, cfg.Postgres.User)
	log.Printf("Mongo:     enabled=%t database=%s", cfg.Mongo.Enabled, cfg.Mongo.Database)
	log.Printf("Templates: dir=%s", cfg.Templates.Dir)
}
