package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile 配置文件名
const DefaultConfigFile = "config.toml"

// 环境变量覆盖
const (
	EnvDataFile = "SALES_DATA_FILE"
	EnvLogLevel = "SALES_LOG_LEVEL"
)

// 配置错误
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidRows    = errors.New("invalid rows: must be at least 1")
	ErrInvalidYear    = errors.New("invalid year: must be positive")
	ErrEmptyFile      = errors.New("invalid data file: path is empty")
)

// AppConfig 应用配置
type AppConfig struct {
	Data      DataConfig      `toml:"data"`
	Generator GeneratorConfig `toml:"generator"`
	Report    ReportConfig    `toml:"report"`
	Log       LogConfig       `toml:"log"`
}

// DataConfig 数据文件配置
type DataConfig struct {
	File string `toml:"file"`
}

// GeneratorConfig 生成器配置
type GeneratorConfig struct {
	Rows      int    `toml:"rows"`
	Year      int    `toml:"year"`
	SheetName string `toml:"sheet_name"`
	Seed      uint64 `toml:"seed"` // 0 表示按时间取种子
}

// ReportConfig 报表配置
type ReportConfig struct {
	Title  string `toml:"title"`
	Format string `toml:"format"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level       string `toml:"level"`
	Environment string `toml:"environment"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			File: "supermarket_sales.xlsx",
		},
		Generator: GeneratorConfig{
			Rows:      100,
			Year:      2024,
			SheetName: "Supermarket Sales",
			Seed:      0,
		},
		Report: ReportConfig{
			Title:  "SUPERMARKET SALES DATA — WORLDWIDE",
			Format: "text",
		},
		Log: LogConfig{
			Level:       "warn",
			Environment: "development",
		},
	}
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if c.Data.File == "" {
		return ErrEmptyFile
	}
	if c.Generator.Rows < 1 {
		return ErrInvalidRows
	}
	if c.Generator.Year < 1 {
		return ErrInvalidYear
	}
	return nil
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// FindConfigFile 查找配置文件
// 1. 显式指定的路径
// 2. 当前目录下的 config.toml
// 3. 可执行文件同目录下的 config.toml
// 找不到时返回空字符串。
func FindConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	if exeDir, err := GetExeDir(); err == nil {
		p := filepath.Join(exeDir, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// LoadConfig 加载配置
// explicit 为空且找不到配置文件时使用默认配置；显式指定的文件不存在时返回 ErrConfigNotFound。
func LoadConfig(explicit string) (*AppConfig, error) {
	config := DefaultConfig()

	path := FindConfigFile(explicit)
	if path == "" && explicit != "" {
		return nil, ErrConfigNotFound
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	// 环境变量覆盖
	if v := os.Getenv(EnvDataFile); v != "" {
		config.Data.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}

	return config, nil
}

// SaveConfig 保存配置到 path
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
